package token

// Ключевые слова ровно те, что нужны для объявлений с параметрами.
// Всё остальное (if, new, typeof, ...) остаётся Ident и живёт только
// внутри сырых спанов выражений/типов.
var keywords = map[string]Kind{
	"function": KwFunction,
	"declare":  KwDeclare,
	"const":    KwConst,
	"let":      KwLet,
	"var":      KwVar,
	"export":   KwExport,
	"async":    KwAsync,
}

// LookupKeyword returns the keyword kind for text, if it is one.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
