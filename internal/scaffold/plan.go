package scaffold

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/toyz/routedoc/pkg/openapi"
	"github.com/toyz/routedoc/pkg/routedoc"
)

// RootResource groups the operations of paths without a first segment
const RootResource = "root"

// DefaultSummary is the summary of the injected "/" route
const DefaultSummary = "Default route"

var (
	braceSegmentRegex = regexp.MustCompile(`\{([^{}]+)\}`)
	invalidIdentRegex = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// Operation is one method on one path, placed inside its resource
type Operation struct {
	// Method is the lowercase HTTP method
	Method string
	// Path is the document path in brace notation
	Path string
	// RoutePath is the path relative to the resource, in colon notation
	RoutePath string
	// FullPath is the document path in colon notation
	FullPath string
	// Handler is the JavaScript identifier of the handler
	Handler string
	// GoHandler is the exported Go name of the handler
	GoHandler string
}

// Message is the body the generated handler responds with
func (o Operation) Message() string {
	return "Handling " + strings.ToUpper(o.Method) + " request for " + o.Path
}

// Resource is a group of operations sharing the first path segment
type Resource struct {
	Name       string
	GoName     string
	Prefix     string
	Operations []Operation
}

// Handlers returns the JavaScript handler names in declaration order
func (r Resource) Handlers() []string {
	names := make([]string, len(r.Operations))
	for i, op := range r.Operations {
		names[i] = op.Handler
	}
	return names
}

// WithDefaultRoute returns the paths of doc with a GET "/" route added when
// the document has no "/" path. doc is not modified.
func WithDefaultRoute(doc *openapi.Document) map[string]openapi.PathItem {
	paths := make(map[string]openapi.PathItem, len(doc.Paths)+1)
	for path, item := range doc.Paths {
		paths[path] = item
	}
	if _, ok := paths["/"]; !ok {
		paths["/"] = openapi.PathItem{
			"get": &openapi.Operation{
				Summary:   DefaultSummary,
				Responses: map[string]openapi.Response{"200": {Description: "Success"}},
			},
		}
	}
	return paths
}

// Plan groups the operations of doc into resources. Resources and paths are
// sorted and methods follow the canonical HTTP order.
func Plan(doc *openapi.Document) []Resource {
	planned := &openapi.Document{Paths: WithDefaultRoute(doc)}

	var resources []Resource
	index := make(map[string]int)

	for _, path := range planned.PathKeys() {
		item := planned.Paths[path]
		segments := splitPath(path)

		name := RootResource
		if len(segments) > 0 {
			name = identifier(segments[0])
		}
		i, ok := index[name]
		if !ok {
			prefix := ""
			if name != RootResource {
				prefix = "/" + segments[0]
			}
			resources = append(resources, Resource{Name: name, GoName: goIdentifier(name), Prefix: prefix})
			i = len(resources) - 1
			index[name] = i
		}

		base := functionName(segments)
		methods := item.Methods()
		for _, method := range methods {
			handler := base
			if len(methods) > 1 {
				handler = base + "_" + method
			}
			resources[i].Operations = append(resources[i].Operations, Operation{
				Method:    method,
				Path:      path,
				RoutePath: routePath(segments),
				FullPath:  routedoc.ToColon(path),
				Handler:   handler,
				GoHandler: goIdentifier(handler),
			})
		}
	}

	sort.SliceStable(resources, func(i, j int) bool {
		return resources[i].Name < resources[j].Name
	})
	for i := range resources {
		dedupeHandlers(&resources[i])
	}
	return resources
}

func splitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// functionName joins the segments with "_", turning "{id}" into "_id"
func functionName(segments []string) string {
	if len(segments) == 0 {
		return "index"
	}
	joined := braceSegmentRegex.ReplaceAllString(strings.Join(segments, "_"), "_$1")
	return identifier(joined)
}

// routePath is the colon-notation path of the segments after the first
func routePath(segments []string) string {
	if len(segments) <= 1 {
		return "/"
	}
	return routedoc.ToColon("/" + strings.Join(segments[1:], "/"))
}

// identifier replaces characters that cannot appear in an identifier
func identifier(name string) string {
	name = invalidIdentRegex.ReplaceAllString(name, "_")
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name
}

// goIdentifier converts a snake identifier into an exported Go name
func goIdentifier(name string) string {
	// casers are stateful, so each call gets its own
	titleCaser := cases.Title(language.English, cases.NoLower)

	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(titleCaser.String(part))
	}

	result := b.String()
	if result == "" || !unicode.IsLetter(rune(result[0])) {
		result = "Route" + result
	}
	return result
}

// dedupeHandlers suffixes handler names that collide within a resource
func dedupeHandlers(resource *Resource) {
	seenJS := make(map[string]int)
	seenGo := make(map[string]int)
	for i := range resource.Operations {
		op := &resource.Operations[i]
		if n := seenJS[op.Handler]; n > 0 {
			op.Handler = op.Handler + "_" + strconv.Itoa(n+1)
		}
		seenJS[op.Handler]++
		if n := seenGo[op.GoHandler]; n > 0 {
			op.GoHandler = op.GoHandler + strconv.Itoa(n+1)
		}
		seenGo[op.GoHandler]++
	}
}
