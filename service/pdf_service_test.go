package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextRejectsGarbage(t *testing.T) {
	svc := NewPDFService()

	_, err := svc.ExtractText([]byte("this is not a pdf"))
	assert.Error(t, err)
}

func TestExtractTextRejectsEmptyInput(t *testing.T) {
	svc := NewPDFService()

	_, err := svc.ExtractText(nil)
	assert.Error(t, err)
}
