package textsig

import "strings"

// statementPrefixes are line starts that indicate structural code even
// without a fenced block.
var statementPrefixes = []string{
	"def ", "class ", "for ", "for(", "if ", "if(", "while ", "while(",
	"return ", "import ", "from ", "func ", "var ", "const ", "let ",
	"public ", "private ", "void ", "int ", "print(", "println(",
}

// HasCode reports whether text contains a fenced code block, a line
// starting with a structural statement prefix, or a C-style statement
// ending.
func HasCode(text string) bool {
	if strings.Contains(text, "```") {
		return true
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(strings.ToLower(line))
		if trimmed == "" {
			continue
		}
		for _, p := range statementPrefixes {
			if strings.HasPrefix(trimmed, p) {
				return true
			}
		}
		if strings.HasSuffix(trimmed, ";") || strings.HasSuffix(trimmed, "{") || strings.HasSuffix(trimmed, "}") {
			return true
		}
	}
	return false
}
