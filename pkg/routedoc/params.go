package routedoc

// ExtractParams returns one path ParamSpec per brace token in path, in order
// of appearance. Repeated names are kept.
func ExtractParams(path string) []ParamSpec {
	matches := braceParamRegex.FindAllStringSubmatch(path, -1)
	params := make([]ParamSpec, 0, len(matches))
	for _, match := range matches {
		params = append(params, ParamSpec{
			Name:     match[1],
			In:       "path",
			Required: true,
			Schema:   ParamSchema{Type: "string"},
		})
	}
	return params
}
