package docfmt

// PrettyOpts настраивает человекочитаемый вывод.
type PrettyOpts struct {
	Color bool
}
