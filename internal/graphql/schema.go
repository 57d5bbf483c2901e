package graphql

import (
	"log/slog"

	"gqlgate/internal/storage"

	"github.com/graphql-go/graphql"
)

// Schema defines the GraphQL schema and resolvers
type Schema struct {
	schema graphql.Schema
	store  storage.Store
	logger *slog.Logger
}

// NewSchema creates a new GraphQL schema backed by the given store
func NewSchema(store storage.Store, logger *slog.Logger) (*Schema, error) {
	s := &Schema{
		store:  store,
		logger: logger,
	}

	// Define Task type
	taskType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Task",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.String,
			},
			"title": &graphql.Field{
				Type: graphql.String,
			},
			"project": &graphql.Field{
				Type: graphql.String,
			},
			"assignee": &graphql.Field{
				Type: graphql.String,
			},
			"status": &graphql.Field{
				Type: graphql.String,
			},
			"createdAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if task, ok := p.Source.(*storage.Task); ok {
						return task.CreatedAt, nil
					}
					return nil, nil
				},
			},
			"closedAt": &graphql.Field{
				Type: graphql.DateTime,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if task, ok := p.Source.(*storage.Task); ok && task.ClosedAt != nil {
						return *task.ClosedAt, nil
					}
					return nil, nil
				},
			},
		},
	})

	// Define TasksResponse type
	tasksResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "TasksResponse",
		Fields: graphql.Fields{
			"tasks": &graphql.Field{
				Type: graphql.NewList(taskType),
			},
			"total": &graphql.Field{
				Type: graphql.Int,
			},
		},
	})

	// Define StatusStat type
	statusStatType := graphql.NewObject(graphql.ObjectConfig{
		Name: "StatusStat",
		Fields: graphql.Fields{
			"status": &graphql.Field{
				Type: graphql.String,
			},
			"count": &graphql.Field{
				Type: graphql.Int,
			},
		},
	})

	// Define root query
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"tasks": &graphql.Field{
				Type: tasksResponseType,
				Args: graphql.FieldConfigArgument{
					"status": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"project": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"assignee": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"since": &graphql.ArgumentConfig{
						Type: graphql.DateTime,
					},
					"until": &graphql.ArgumentConfig{
						Type: graphql.DateTime,
					},
					"limit": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
					"offset": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
				},
				Resolve: s.resolveTasks,
			},
			"task": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: s.resolveTask,
			},
			"stats": &graphql.Field{
				Type: graphql.NewList(statusStatType),
				Args: graphql.FieldConfigArgument{
					"since": &graphql.ArgumentConfig{
						Type: graphql.DateTime,
					},
				},
				Resolve: s.resolveStats,
			},
		},
	})

	// Define root mutation
	rootMutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "RootMutation",
		Fields: graphql.Fields{
			"createTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"title": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
					"project": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
					"assignee": &graphql.ArgumentConfig{
						Type: graphql.String,
					},
				},
				Resolve: s.resolveCreateTask,
			},
			"closeTask": &graphql.Field{
				Type: taskType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.String),
					},
				},
				Resolve: s.resolveCloseTask,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    rootQuery,
		Mutation: rootMutation,
	})
	if err != nil {
		return nil, err
	}

	s.schema = schema
	return s, nil
}
