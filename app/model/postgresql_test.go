package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Status diturunkan dari prl_feedback: reviewed iff feedback non-null.
// Tidak ada kolom status tersendiri, jadi invariannya mustahil dilanggar.
func TestReportStatus_DerivedFromFeedback(t *testing.T) {
	r := &Report{}
	assert.Equal(t, ReportStatusPending, r.Status())

	feedback := "perbanyak latihan soal"
	r.PRLFeedback = &feedback
	assert.Equal(t, ReportStatusReviewed, r.Status())

	// Menimpa feedback tidak mengubah status; tidak ada transisi balik.
	revised := "sudah membaik"
	r.PRLFeedback = &revised
	assert.Equal(t, ReportStatusReviewed, r.Status())
}
