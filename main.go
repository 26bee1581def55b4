package main

import (
	"fmt"
	"net/http"
	"os"

	"todolist-service/graph"
	"todolist-service/handlers"
	"todolist-service/logging"
	"todolist-service/services"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		// Environment variables may come from the process environment instead.
		fmt.Fprintf(os.Stderr, "no .env file loaded: %v\n", err)
	}

	debug := os.Getenv("DEBUG") == "true"
	logging.InitLogger(debug)
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting TodoList Service...")

	taskService := services.NewTaskService()
	taskHandler := handlers.NewTaskHandler(taskService)

	schema, err := graph.NewSchema(taskService)
	if err != nil {
		logging.Logger.Fatalf("Event ID: SCHEMA_BUILD_FAILED, Description: Failed to build GraphQL schema: %v", err)
	}

	playground := os.Getenv("ENABLE_PLAYGROUND") == "true"

	r := mux.NewRouter()
	r.Handle("/graphql", graph.NewHandler(schema, playground))
	r.HandleFunc("/health", handlers.HealthCheck).Methods(http.MethodGet)

	r.HandleFunc("/api/v1/tasks", taskHandler.GetAllTasks).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tasks", taskHandler.CreateTask).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/tasks/{taskId}", taskHandler.GetTaskByID).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tasks/{taskId}", taskHandler.UpdateTask).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/tasks/{taskId}", taskHandler.DeleteTask).Methods(http.MethodDelete)

	corsRouter := enableCORS(r)

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		logging.Logger.Fatalf("Event ID: CONFIG_ERROR, Description: SERVER_PORT is not set in the environment variables.")
	}

	serverAddress := fmt.Sprintf(":%s", serverPort)
	logging.Logger.Infof("Event ID: SERVER_START_INFO, Description: Server running on http://localhost%s", serverAddress)

	if err := http.ListenAndServe(serverAddress, corsRouter); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FATAL_ERROR, Description: Server failed to start: %v", err)
	}
}
