// Package format renders an ast.Unit back into Java source text.
//
// Печать токенная: каждый оставшийся токен выводится вместе с оставшимися
// leading trivia в порядке дерева. Пробелы перед первым токеном отбрасываются.
// Не делает: переформатирования, переносов или выравнивания.
package format
