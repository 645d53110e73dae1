package models

import (
	"time"

	"taskdeck/taskdeck/domain"
)

// Response DTOs. These strip domain wrappers (and the password hash) before
// anything is serialized to a client.

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TagSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type TaskResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Completed   bool         `json:"completed"`
	Priority    string       `json:"priority"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
	UserID      string       `json:"userId"`
	CategoryID  string       `json:"categoryId"`
	Tags        []TagSummary `json:"tags"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func NewUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Name:      string(user.Name),
		Email:     string(user.Email),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewCategoryResponse(category domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID.String(),
		Name:      string(category.Name),
		Color:     string(category.Color),
		UserID:    category.UserID.String(),
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func NewCategoryResponseList(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = NewCategoryResponse(c)
	}
	return out
}

func NewTagResponse(tag domain.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID.String(),
		Name:      string(tag.Name),
		Color:     string(tag.Color),
		UserID:    tag.UserID.String(),
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}

func NewTagResponseList(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = NewTagResponse(t)
	}
	return out
}

func NewTaskResponse(task domain.Task, tags []domain.TagInfo) TaskResponse {
	summaries := make([]TagSummary, len(tags))
	for i, t := range tags {
		summaries[i] = TagSummary{ID: t.ID.String(), Name: t.Name, Color: t.Color}
	}
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       string(task.Title),
		Description: string(task.Description),
		Completed:   task.Completed,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CompletedAt: task.CompletedAt,
		UserID:      task.UserID.String(),
		CategoryID:  task.CategoryID.String(),
		Tags:        summaries,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
