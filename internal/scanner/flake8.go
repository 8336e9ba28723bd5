package scanner

// Flake8 executa `flake8 <path>`.
var Flake8 = Tool{
	Name:    "flake8",
	Command: "flake8",
}
