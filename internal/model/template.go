package model

import "time"

// JobTemplate is a saved starting point for recurring packing jobs: a fixed
// set of items and candidate boxes without any result attached.
type JobTemplate struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Items       []Item    `json:"items"`
	Boxes       []Box     `json:"boxes"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTemplateFromJob captures a job's inputs as a reusable template.
func NewTemplateFromJob(job Job, name, description string) JobTemplate {
	items := make([]Item, len(job.Items))
	copy(items, job.Items)
	boxes := make([]Box, len(job.Boxes))
	copy(boxes, job.Boxes)
	return JobTemplate{
		Name:        name,
		Description: description,
		Items:       items,
		Boxes:       boxes,
		CreatedAt:   time.Now(),
	}
}

// TemplateStore is the persisted collection of job templates.
type TemplateStore struct {
	Templates []JobTemplate `json:"templates"`
}

// NewTemplateStore returns an empty store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{Templates: []JobTemplate{}}
}

// Add appends a template, replacing any existing one with the same name.
func (s *TemplateStore) Add(t JobTemplate) {
	for i := range s.Templates {
		if s.Templates[i].Name == t.Name {
			s.Templates[i] = t
			return
		}
	}
	s.Templates = append(s.Templates, t)
}

// Find returns the template with the given name.
func (s TemplateStore) Find(name string) (JobTemplate, bool) {
	for _, t := range s.Templates {
		if t.Name == name {
			return t, true
		}
	}
	return JobTemplate{}, false
}

// Remove deletes the template with the given name.
func (s *TemplateStore) Remove(name string) bool {
	for i := range s.Templates {
		if s.Templates[i].Name == name {
			s.Templates = append(s.Templates[:i], s.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// ToJob instantiates a fresh job from the template.
func (t JobTemplate) ToJob() Job {
	job := NewJob()
	job.Name = t.Name
	job.Items = make([]Item, len(t.Items))
	copy(job.Items, t.Items)
	job.Boxes = make([]Box, len(t.Boxes))
	copy(job.Boxes, t.Boxes)
	return job
}
