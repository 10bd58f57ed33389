package models

import "time"

// CareTaskType enumerates recurring garden chores.
type CareTaskType string

const (
	TaskWater     CareTaskType = "Water"
	TaskFertilize CareTaskType = "Fertilize"
	TaskPrune     CareTaskType = "Prune"
	TaskPestCheck CareTaskType = "Pest Check"
	TaskDeadhead  CareTaskType = "Deadhead"
	TaskHarvest   CareTaskType = "Harvest"
	TaskSupport   CareTaskType = "Support"
)

// CareTask is a scheduled chore for one plant. CompletedDate is nil until
// the task is completed.
type CareTask struct {
	ID            string       `json:"id"`
	PlantID       string       `json:"plantId"`
	Type          CareTaskType `json:"type"`
	ScheduledDate time.Time    `json:"scheduledDate"`
	Instructions  string       `json:"instructions"`
	Completed     bool         `json:"completed"`
	CompletedDate *time.Time   `json:"completedDate,omitempty"`
	Notes         string       `json:"notes"`
}

// Clone returns an independent copy of the task.
func (t CareTask) Clone() CareTask {
	if t.CompletedDate != nil {
		d := *t.CompletedDate
		t.CompletedDate = &d
	}
	return t
}

// CareTaskPatch carries a partial task update.
type CareTaskPatch struct {
	PlantID       *string       `json:"plantId"`
	Type          *CareTaskType `json:"type"`
	ScheduledDate *time.Time    `json:"scheduledDate"`
	Instructions  *string       `json:"instructions"`
	Completed     *bool         `json:"completed"`
	CompletedDate *time.Time    `json:"completedDate"`
	Notes         *string       `json:"notes"`
}

// Apply replaces every field set in the patch on a copy of t.
func (patch CareTaskPatch) Apply(t CareTask) CareTask {
	t = t.Clone()
	if patch.PlantID != nil {
		t.PlantID = *patch.PlantID
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.ScheduledDate != nil {
		t.ScheduledDate = *patch.ScheduledDate
	}
	if patch.Instructions != nil {
		t.Instructions = *patch.Instructions
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.CompletedDate != nil {
		d := *patch.CompletedDate
		t.CompletedDate = &d
	}
	if patch.Notes != nil {
		t.Notes = *patch.Notes
	}
	return t
}
