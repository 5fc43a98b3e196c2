package main

import (
	"context"
	"io"
	_ "net/http/pprof"
	"os"
	"strings"
	"time"

	"github.com/bounhub/boun-backend/common/conf"
	"github.com/bounhub/boun-backend/common/model"
	log "github.com/sirupsen/logrus"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

type boun struct {
	app    *kingpin.ApplicationModel
	config *bounConfig
	ctx    context.Context
}

type bounConfig struct {
	service            conf.Config
	semester           string
	department         string
	includeUnscheduled bool
	outputFormat       string
	outputFile         string
}

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	bconf := &bounConfig{}

	app := kingpin.New("boun", "A web scraper that retrieves course schedules from Bogazici University's registration pages.")

	app.Flag("semester", "Semester code, e.g. 2024-2025-1 for the fall semester").
		Short('s').
		Required().
		Envar("BOUN_SEMESTER").
		StringVar(&bconf.semester)

	app.Flag("department", "Scrape a single department by its short name, e.g. CMPE").
		Short('d').
		Envar("BOUN_DEPARTMENT").
		StringVar(&bconf.department)

	app.Flag("include-unscheduled", "Keep courses without any meeting information").
		Envar("BOUN_INCLUDE_UNSCHEDULED").
		BoolVar(&bconf.includeUnscheduled)

	app.Flag("format", "Choose output format").
		Short('f').
		HintOptions(model.Json).
		PlaceHolder("[json]").
		Default(model.Json).
		Envar("BOUN_OUTPUT_FORMAT").
		EnumVar(&bconf.outputFormat, model.Json)

	app.Flag("output", "Write results to this file instead of the configured one").
		Short('o').
		Envar("BOUN_OUTPUT").
		StringVar(&bconf.outputFile)

	configFile := app.Flag("config", "Configuration file for the application").
		Required().
		Short('c').
		Envar("BOUN_CONFIG").
		File()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// Parse configuration file
	bconf.service = conf.OpenConfigWithName(*configFile, app.Name)

	// Start profiling
	go model.StartPprof(bconf.service.DebugSever(app.Name))

	(&boun{
		app:    app.Model(),
		config: bconf,
		ctx:    context.TODO(),
	}).init()
}

func (boun *boun) init() {
	donem, err := semesterDonem(boun.config.semester)
	if err != nil {
		log.WithError(err).Fatalln()
	}

	records := boun.scrape(donem)
	if records.Len() == 0 {
		log.Warnln("no courses were found for any department")
	} else {
		log.WithFields(log.Fields{"courses": records.Len()}).Infoln("total courses found")
	}

	reader, err := model.MarshalMessage(boun.config.outputFormat, records)
	if err != nil {
		log.WithError(err).Fatalln()
	}

	if file := boun.outputPath(); file != "" {
		out, err := os.Create(file)
		if err != nil {
			log.WithError(err).Fatalln()
		}
		defer out.Close()

		if _, err := io.Copy(out, reader); err != nil {
			log.WithError(err).Fatalln()
		}
		log.WithFields(log.Fields{"file": file}).Infoln("results saved")
	} else {
		io.Copy(os.Stdout, reader)
	}
}

// outputPath resolves where results are written: the --output flag wins over
// the configuration file's value, an empty result means stdout.
func (boun *boun) outputPath() string {
	if boun.config.outputFile != "" {
		return boun.config.outputFile
	}
	return boun.config.service.Output.File
}

func (boun *boun) scrape(donem string) *model.Records {
	defer model.TimeTrack(time.Now(), "scrape")

	client := newClient(boun.config.service)
	records := model.NewRecords()

	for _, dept := range boun.departments() {
		for _, name := range dept.Names {
			logger := log.WithFields(log.Fields{"department": name, "kisaadi": dept.Abbr})
			logger.Infoln("fetching department schedule")

			markup, err := client.fetchPage(client.pageUrl(donem, dept.Abbr, name))
			if err != nil {
				logger.WithError(err).Errorln("failed to fetch department page")
				continue
			}

			courses, err := extractPage(markup, boun.config.includeUnscheduled)
			if err != nil {
				logger.WithError(err).Errorln("failed to extract department page")
				continue
			}

			if courses.Len() == 0 {
				logger.Warnln("no courses found")
			} else {
				logger.WithFields(log.Fields{"courses": courses.Len()}).Infoln("extracted courses")
			}

			for _, key := range records.Merge(courses) {
				log.WithFields(log.Fields{"code": key}).Infoln("duplicate course code across departments")
			}

			time.Sleep(boun.config.service.ScrapeDelay())
		}
	}

	return records
}

func (boun *boun) departments() []department {
	if boun.config.department == "" {
		return departmentCatalog
	}

	if dept, ok := findDepartment(strings.ToUpper(boun.config.department)); ok {
		return []department{dept}
	}

	log.WithFields(log.Fields{"kisaadi": boun.config.department}).Fatalln("unknown department short name")
	return nil
}
