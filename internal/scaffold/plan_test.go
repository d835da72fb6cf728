package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/routedoc/pkg/openapi"
)

func operation(summary string) *openapi.Operation {
	return &openapi.Operation{
		Summary:   summary,
		Responses: map[string]openapi.Response{"200": {Description: "Success"}},
	}
}

func usersDocument() *openapi.Document {
	doc := openapi.New()
	doc.Paths["/users"] = openapi.PathItem{"post": operation("create"), "get": operation("list")}
	doc.Paths["/users/{id}"] = openapi.PathItem{"delete": operation("remove"), "get": operation("show")}
	doc.Paths["/health"] = openapi.PathItem{"get": operation("health")}
	return doc
}

func TestPlan(t *testing.T) {
	resources := Plan(usersDocument())
	require.Len(t, resources, 3)

	assert.Equal(t, Resource{
		Name:   "health",
		GoName: "Health",
		Prefix: "/health",
		Operations: []Operation{
			{Method: "get", Path: "/health", RoutePath: "/", FullPath: "/health", Handler: "health", GoHandler: "Health"},
		},
	}, resources[0])

	assert.Equal(t, Resource{
		Name:   "root",
		GoName: "Root",
		Operations: []Operation{
			{Method: "get", Path: "/", RoutePath: "/", FullPath: "/", Handler: "index", GoHandler: "Index"},
		},
	}, resources[1])

	users := resources[2]
	assert.Equal(t, "/users", users.Prefix)
	assert.Equal(t, []string{"users_get", "users_post", "users__id_get", "users__id_delete"}, users.Handlers())

	byHandler := make(map[string]Operation)
	for _, op := range users.Operations {
		byHandler[op.Handler] = op
	}
	assert.Equal(t, "/:id", byHandler["users__id_delete"].RoutePath)
	assert.Equal(t, "/users/:id", byHandler["users__id_delete"].FullPath)
	assert.Equal(t, "UsersIdDelete", byHandler["users__id_delete"].GoHandler)
	assert.Equal(t, "Handling DELETE request for /users/{id}", byHandler["users__id_delete"].Message())
}

func TestPlan_KeepsExistingRoot(t *testing.T) {
	doc := openapi.New()
	doc.Paths["/"] = openapi.PathItem{"post": operation("root")}

	resources := Plan(doc)
	require.Len(t, resources, 1)
	require.Len(t, resources[0].Operations, 1)
	assert.Equal(t, "post", resources[0].Operations[0].Method)
}

func TestWithDefaultRoute(t *testing.T) {
	doc := openapi.New()
	paths := WithDefaultRoute(doc)

	require.Contains(t, paths, "/")
	assert.Equal(t, DefaultSummary, paths["/"]["get"].Summary)
	assert.Empty(t, doc.Paths, "input document must not change")
}

func TestFunctionName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/", "index"},
		{"/users", "users"},
		{"/users/{id}", "users__id"},
		{"/posts/{slug}/comments/{id}", "posts__slug_comments__id"},
		{"/api-v1/items", "api_v1_items"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, functionName(splitPath(tt.path)))
		})
	}
}

func TestGoIdentifier(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"index", "Index"},
		{"users__id", "UsersId"},
		{"posts__slug_comments__id_get", "PostsSlugCommentsIdGet"},
		{"_2024_reports", "Route2024Reports"},
		{"userProfile_get", "UserProfileGet"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, goIdentifier(tt.in))
		})
	}
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("Fiber")
	require.NoError(t, err)
	assert.Equal(t, TargetFiber, target)
	assert.True(t, target.IsGo())
	assert.False(t, TargetKoa.IsGo())

	_, err = ParseTarget("rails")
	assert.Error(t, err)
}
