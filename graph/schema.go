// Package graph exposes the task service as a GraphQL schema. The
// resolvers are pure pass-through: they coerce arguments, delegate to
// the service and map its not-found signal to a null result.
package graph

import (
	"errors"
	"net/http"

	"todolist-service/models"
	"todolist-service/services"

	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"
)

// NewSchema builds the executable schema over the given task service.
func NewSchema(service *services.TaskService) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"tasks": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(taskType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return service.ListTasks(), nil
				},
			},
			"task": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"taskId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Int),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					task, err := service.GetTask(p.Args["taskId"].(int))
					if errors.Is(err, models.ErrTaskNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return task, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createTask": &graphql.Field{
				Type: graphql.NewNonNull(taskType),
				Args: graphql.FieldConfigArgument{
					"taskInput": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(taskInputType),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := p.Args["taskInput"].(map[string]interface{})
					data := models.TaskCreate{
						Title:       input["title"].(string),
						Description: input["description"].(string),
					}
					if completed, ok := input["completed"].(bool); ok {
						data.Completed = completed
					}
					return service.CreateTask(data)
				},
			},
			"updateTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"taskId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Int),
					},
					"taskInput": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(taskUpdateInputType),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					input := p.Args["taskInput"].(map[string]interface{})
					data := models.TaskUpdate{}
					if title, ok := input["title"].(string); ok {
						data.Title = &title
					}
					if description, ok := input["description"].(string); ok {
						data.Description = &description
					}
					if completed, ok := input["completed"].(bool); ok {
						data.Completed = &completed
					}

					task, err := service.UpdateTask(p.Args["taskId"].(int), data)
					if errors.Is(err, models.ErrTaskNotFound) {
						return nil, nil
					}
					if err != nil {
						return nil, err
					}
					return task, nil
				},
			},
			"deleteTask": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"taskId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Int),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return service.DeleteTask(p.Args["taskId"].(int)), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// NewHandler mounts the schema as an HTTP handler. The GraphiQL
// playground is only served when enabled through configuration.
func NewHandler(schema graphql.Schema, playground bool) http.Handler {
	return gqlhandler.New(&gqlhandler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: playground,
	})
}
