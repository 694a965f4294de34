// Package project loads jstrip configuration.
//
// Порядок приоритетов: флаги > окружение (.env, затем переменные процесса)
// > jstrip.toml > значения по умолчанию. Флаги применяет cmd/jstrip.
package project
