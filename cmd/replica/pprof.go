package main

import _ "net/http/pprof" //nolint:gosec // только при PPROF_ENABLED, порт не публикуется
