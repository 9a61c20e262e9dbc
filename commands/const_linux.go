package commands

const (
	_etc = "/usr/local/etc/licitaciones"

	DEFAULT_CONFIG = _etc + "/licitaciones-app-sheets.yaml"
)
