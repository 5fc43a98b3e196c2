package main

import (
	"testing"

	"github.com/bounhub/boun-backend/common/conf"
	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	scraper := &boun{config: &bounConfig{}}
	scraper.config.service.Output.File = "configured.json"

	assert.Equal(t, "configured.json", scraper.outputPath())

	scraper.config.outputFile = "flagged.json"
	assert.Equal(t, "flagged.json", scraper.outputPath())

	scraper = &boun{config: &bounConfig{service: conf.Config{}}}
	assert.Equal(t, "", scraper.outputPath())
}
