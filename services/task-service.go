package services

import (
	"strings"
	"sync"

	"todolist-service/models"
)

// TaskService owns the in-memory task collection and the identifier
// counter. No other component mutates this state directly. The mutex
// guards against concurrent in-flight requests; net/http runs each
// request on its own goroutine.
type TaskService struct {
	mu     sync.RWMutex
	tasks  []models.Task
	nextID int
}

func NewTaskService() *TaskService {
	return &TaskService{nextID: 1}
}

// ListTasks returns all tasks in insertion order. Never fails.
func (s *TaskService) ListTasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// GetTask returns the task with the given id, or models.ErrTaskNotFound
// if no task matches.
func (s *TaskService) GetTask(id int) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, models.ErrTaskNotFound
}

// CreateTask validates the input, assigns the next identifier and appends
// the new task. Identifiers are strictly increasing and never reused.
func (s *TaskService) CreateTask(data models.TaskCreate) (*models.Task, error) {
	if strings.TrimSpace(data.Title) == "" {
		return nil, models.NewValidationError("title must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          s.nextID,
		Title:       data.Title,
		Description: data.Description,
		Completed:   data.Completed,
	}
	s.nextID++
	s.tasks = append(s.tasks, task)

	return &task, nil
}

// UpdateTask applies a partial update to the task with the given id.
// Only fields present in data change; a field explicitly supplied as
// empty or false is still applied. Returns models.ErrTaskNotFound if
// no task matches.
func (s *TaskService) UpdateTask(id int, data models.TaskUpdate) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if data.Title != nil {
			s.tasks[i].Title = *data.Title
		}
		if data.Description != nil {
			s.tasks[i].Description = *data.Description
		}
		if data.Completed != nil {
			s.tasks[i].Completed = *data.Completed
		}
		task := s.tasks[i]
		return &task, nil
	}
	return nil, models.ErrTaskNotFound
}

// DeleteTask removes the task with the given id. It returns false when no
// task matches; the freed identifier is never reassigned.
func (s *TaskService) DeleteTask(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
