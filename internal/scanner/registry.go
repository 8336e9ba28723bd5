package scanner

// DefaultTools é a ordem de execução: primeiro o linter, depois o verificador de estilo.
var DefaultTools = []Tool{Pylint, Flake8}

var scanners = map[string]Tool{
	Pylint.Name: Pylint,
	Flake8.Name: Flake8,
}

// Lookup devolve a definição embutida de uma ferramenta.
func Lookup(name string) (Tool, bool) {
	t, ok := scanners[name]
	return t, ok
}
