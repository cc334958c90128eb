package fontatlas

import "github.com/gogpu/fontatlas/internal/parallel"

// Job describes one atlas of a batch.
type Job struct {
	FontPath  string
	PointSize float64
	Glyphs    GlyphSet

	// OutDir, when set, makes the job write its atlas with GenerateFile.
	OutDir string

	Options []Option
}

// JobResult is the outcome of one Job.
type JobResult struct {
	Job    Job
	Result *Result // nil when the job failed or wrote a file
	Path   string  // file written, if OutDir was set
	Err    error
}

// GenerateBatch runs every job as an independent pipeline on up to workers
// goroutines (GOMAXPROCS when workers <= 0). Each job opens its own font
// handle and allocates its own image. Results are returned in job order and
// one failing job does not affect the others.
func (c *Composer) GenerateBatch(jobs []Job, workers int) []JobResult {
	results := make([]JobResult, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	pool := parallel.NewWorkerPool(min(workers, len(jobs)))
	defer pool.Close()

	work := make([]func(), len(jobs))
	for i, job := range jobs {
		work[i] = func() {
			res := JobResult{Job: job}
			if job.OutDir != "" {
				res.Path, res.Err = c.GenerateFile(job.FontPath, job.PointSize, job.Glyphs, job.OutDir, job.Options...)
			} else {
				res.Result, res.Err = c.Compose(job.FontPath, job.PointSize, job.Glyphs, job.Options...)
			}
			results[i] = res
		}
	}
	pool.ExecuteAll(work)

	return results
}
