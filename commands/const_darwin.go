package commands

const (
	_etc = "/usr/local/etc/com.github.licitaciones"

	DEFAULT_CONFIG = _etc + "/licitaciones-app-sheets.yaml"
)
