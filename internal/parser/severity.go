package parser

// FilterSeverity mantém apenas as linhas da saída do pylint que começam com
// um dos Markers.
func FilterSeverity(output string) []string {
	var issues []string
	for _, line := range SplitLines(output) {
		if HasSeverityMarker(line) {
			issues = append(issues, line)
		}
	}
	return issues
}

func HasSeverityMarker(line string) bool {
	if line == "" {
		return false
	}
	for _, m := range Markers {
		if line[0] == byte(m) {
			return true
		}
	}
	return false
}
