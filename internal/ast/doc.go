// Package ast holds the mutable syntax tree of one Java compilation unit.
//
// Дерево структурное: пакет, импорты, объявления типов и их члены.
// Тела методов и инициализаторы хранятся как непрозрачные сбалансированные
// последовательности токенов. Комментарии и пробелы живут в Leading у токенов.
package ast
