package uploader

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dive-sc/sinan-godata-app/sinan/client"
	"github.com/dive-sc/sinan-godata-app/sinan/constants"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/utils"
)

// Uploader pushes assembled cases to a Go.Data outbreak through a bounded
// pool of workers. One case failing never stops the others.
type Uploader struct {
	Client     client.APIClient
	MaxWorkers int
	Logger     logrus.FieldLogger
}

func New(apiClient client.APIClient, logger logrus.FieldLogger) *Uploader {
	return &Uploader{
		Client:     apiClient,
		MaxWorkers: utils.GetEnvInt("SINAN_UPLOAD_WORKERS", 5),
		Logger:     logger,
	}
}

// SendCases uploads every case to the outbreak. Cases whose visualId already
// exists remotely are updated in place, the rest are created. The returned
// results arrive in completion order, one per input case.
func (u *Uploader) SendCases(outbreakID string, cases []models.Case) ([]models.UploadResult, error) {
	existing, err := u.Client.ListCases(outbreakID)
	if err != nil {
		return nil, err
	}
	remoteIDs := make(map[string]string, len(existing))
	for _, ref := range existing {
		remoteIDs[ref.VisualID] = ref.ID
	}

	workers := u.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > len(cases) {
		workers = len(cases)
	}

	jobs := make(chan models.Case)
	results := make(chan models.UploadResult, len(cases))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for caseData := range jobs {
				results <- u.sendCase(outbreakID, caseData, remoteIDs[caseData.VisualID])
			}
		}()
	}

	for _, caseData := range cases {
		jobs <- caseData
	}
	close(jobs)
	wg.Wait()
	close(results)

	collected := make([]models.UploadResult, 0, len(cases))
	for result := range results {
		collected = append(collected, result)
	}

	u.logger().Infof("uploaded %d cases to outbreak %s (%d failed)",
		len(collected), outbreakID, countErrors(collected))
	return collected, nil
}

func (u *Uploader) sendCase(outbreakID string, caseData models.Case, remoteID string) models.UploadResult {
	var (
		ref *models.CaseRef
		err error
	)
	if remoteID != "" {
		ref, err = u.Client.UpdateCase(outbreakID, remoteID, caseData)
	} else {
		ref, err = u.Client.CreateCase(outbreakID, caseData)
	}

	if err != nil {
		u.logger().Errorf("case %s failed to upload: %s", caseData.VisualID, err)
		return models.UploadResult{
			VisualID:     caseData.VisualID,
			Status:       constants.UploadError,
			ErrorMessage: err.Error(),
		}
	}

	return models.UploadResult{
		VisualID:   caseData.VisualID,
		Status:     constants.UploadSuccess,
		ResponseID: ref.ID,
	}
}

func (u *Uploader) logger() logrus.FieldLogger {
	if u.Logger != nil {
		return u.Logger
	}
	return logrus.StandardLogger()
}

func countErrors(results []models.UploadResult) int {
	failed := 0
	for _, result := range results {
		if result.Status == constants.UploadError {
			failed++
		}
	}
	return failed
}
