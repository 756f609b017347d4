package genre

import (
	"gopkg.in/cheggaaa/pb.v1"
)

const progressSteps = 50

// stage runs fn behind a progress bar that fills once fn succeeds.
func (p Pipeline) stage(description string, fn func() error) error {
	bar := pb.New(progressSteps).Prefix(description)
	bar.ShowSpeed = false
	if p.ProgressOutput != nil {
		bar.Output = p.ProgressOutput
	} else {
		bar.NotPrint = true
	}
	bar.Start()
	defer bar.Finish()

	if err := fn(); err != nil {
		return err
	}
	bar.Add(progressSteps)
	return nil
}
