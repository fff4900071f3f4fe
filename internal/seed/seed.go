// Package seed loads starter job listings from a YAML file and posts them
// through the post-job controller, so seeded rows pass the same validation
// and always land as active.
package seed

import (
	"context"
	"fmt"
	"io"

	"muto-jobboard/internal/domain"
	"muto-jobboard/pkg/logger"

	"gopkg.in/yaml.v3"
)

// Job is one entry of the seed file
type Job struct {
	Title        string `yaml:"title"`
	Company      string `yaml:"company"`
	Location     string `yaml:"location"`
	Type         string `yaml:"type"`
	Description  string `yaml:"description"`
	Requirements string `yaml:"requirements"`
	SalaryRange  string `yaml:"salary_range"`
	Deadline     string `yaml:"deadline"`
}

type File struct {
	Jobs []Job `yaml:"jobs"`
}

func (j Job) Form() domain.PostJobForm {
	return domain.PostJobForm{
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		Type:         j.Type,
		Description:  j.Description,
		Requirements: j.Requirements,
		SalaryRange:  j.SalaryRange,
		Deadline:     j.Deadline,
	}
}

// Load decodes a seed file. Unknown keys are rejected so typos surface.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &File{}, nil
		}
		return nil, fmt.Errorf("seed: decode: %w", err)
	}
	return &f, nil
}

// Result counts what Run did
type Result struct {
	Inserted int
	Failed   int
}

// Run posts every job in order. A rejected entry is logged and skipped; a
// cancelled context stops the run.
func Run(ctx context.Context, postJob domain.PostJobUsecase, f *File) (Result, error) {
	var res Result
	for i, job := range f.Jobs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if _, err := postJob.Submit(ctx, job.Form(), "seed"); err != nil {
			logger.Log.Warn("seed entry rejected", "index", i, "title", job.Title, "error", err)
			res.Failed++
			continue
		}
		res.Inserted++
	}
	return res, nil
}
