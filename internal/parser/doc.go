// Package parser builds an ast.Unit from a Java token stream.
//
// Разбор структурный: выражения и операторы не разбираются, тела методов
// и инициализаторы сохраняются сбалансированными последовательностями токенов.
// Первая синтаксическая ошибка прекращает разбор; дерево в этом случае не возвращается.
package parser
