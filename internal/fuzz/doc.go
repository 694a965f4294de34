// Package fuzztests houses Go fuzz harnesses for the clean pipeline
// (source -> lexer -> parser -> strip -> render). They guard against panics,
// hangs and broken fallbacks on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер и Clean.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
