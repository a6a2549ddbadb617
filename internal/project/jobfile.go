package project

import (
	"fmt"

	"github.com/piwi3910/CartonPack/internal/model"
)

// JobFileExtension is the file extension used for saved packing jobs.
const JobFileExtension = ".cartonpack"

// SaveJob writes a job, including any computed result, to a JSON file.
func SaveJob(path string, job model.Job) error {
	return saveJSON(path, job)
}

// LoadJob reads a job from a JSON file.
func LoadJob(path string) (model.Job, error) {
	var job model.Job
	if err := loadJSON(path, &job); err != nil {
		return model.Job{}, fmt.Errorf("cannot parse job file: %w", err)
	}
	if job.Items == nil {
		job.Items = []model.Item{}
	}
	if job.Boxes == nil {
		job.Boxes = []model.Box{}
	}
	return job, nil
}
