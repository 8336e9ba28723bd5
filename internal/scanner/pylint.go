package scanner

// Pylint executa `pylint --output-format=text <path>`.
var Pylint = Tool{
	Name:    "pylint",
	Command: "pylint",
	Args:    []string{"--output-format=text"},
}
