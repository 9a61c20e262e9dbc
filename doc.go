/*
Package licitaciones-app-sheets maintains a Google Sheets register of procurement listings.

licitaciones-app-sheets can be used from the command line but is really intended to be run from a cron job or CI
workflow after the daily search, to append the newly found listings to the worksheet for the current month.

licitaciones-app-sheets supports the following commands:

  - keywords, to retrieve the search keywords from the 'Palabras Clave' worksheet
  - put, to append new listings from a JSON or TSV file to the month worksheet, skipping listings already stored
  - get, to download a month worksheet as a TSV file
  - version, to display the current version
*/
package sheets
