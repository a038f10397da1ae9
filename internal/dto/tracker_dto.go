package dto

import "github.com/google/uuid"

type UpsertMonthlyGoalRequest struct {
	Month    string   `json:"month"`
	Mantra   string   `json:"mantra"`
	MainGoal string   `json:"main_goal"`
	Top3     []string `json:"top3"`
}

type CreateHabitRequest struct {
	Title string `json:"title"`
}

type ToggleCompletionRequest struct {
	HabitID   uuid.UUID `json:"habit_id"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
}

type ToggleCompletionResponse struct {
	Completed bool `json:"completed"`
}

type UpsertDailyLogRequest struct {
	Date        string `json:"date"`
	EnergyLevel int    `json:"energy_level"`
	Notes       string `json:"notes"`
}

type CreateTodoRequest struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

type UpdateTodoRequest struct {
	Date      *string `json:"date"`
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
