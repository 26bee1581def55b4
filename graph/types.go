package graph

import "github.com/graphql-go/graphql"

// taskType is the GraphQL output shape for a task.
var taskType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Task",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
		},
		"title": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"description": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"completed": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Boolean),
		},
	},
})

// taskInputType is the input shape for createTask. Completed defaults to
// false when the caller omits it.
var taskInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TaskInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
		"description": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
		"completed": &graphql.InputObjectFieldConfig{
			Type:         graphql.Boolean,
			DefaultValue: false,
		},
	},
})

// taskUpdateInputType is the input shape for updateTask. Every field is
// optional; omitted fields leave the stored value untouched.
var taskUpdateInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "TaskUpdateInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title": &graphql.InputObjectFieldConfig{
			Type: graphql.String,
		},
		"description": &graphql.InputObjectFieldConfig{
			Type: graphql.String,
		},
		"completed": &graphql.InputObjectFieldConfig{
			Type: graphql.Boolean,
		},
	},
})
