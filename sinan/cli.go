package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/dive-sc/sinan-godata-app/conf"
	"github.com/dive-sc/sinan-godata-app/log"
	"github.com/dive-sc/sinan-godata-app/sinan/client"
	"github.com/dive-sc/sinan-godata-app/sinan/constants"
	"github.com/dive-sc/sinan-godata-app/sinan/disease"
	sinanerrors "github.com/dive-sc/sinan-godata-app/sinan/errors"
	"github.com/dive-sc/sinan-godata-app/sinan/importer"
	"github.com/dive-sc/sinan-godata-app/sinan/location"
	"github.com/dive-sc/sinan-godata-app/sinan/models"
	"github.com/dive-sc/sinan-godata-app/sinan/preprocess"
	"github.com/dive-sc/sinan-godata-app/sinan/reader"
	"github.com/dive-sc/sinan-godata-app/sinan/translation"
	"github.com/dive-sc/sinan-godata-app/sinan/uploader"
	"github.com/dive-sc/sinan-godata-app/sinan/utils"
	"github.com/dive-sc/sinan-godata-app/sinan/writer"
)

// App Name and usage.  Edit them here to prevent breaking tests
const Name = "sinan"
const Usage = "SINAN to Go.Data case transfer CLI"

func GetApp() *cli.App {
	return setUpApp()
}

func setUpApp() *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Usage = Usage
	var opts importOptions
	app.Commands = []cli.Command{
		{
			Name:  "import",
			Usage: "Transform a SINAN export and send its cases to a Go.Data outbreak",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:        "file",
					Usage:       "Path of the SINAN .xlsx export",
					Destination: &opts.file,
				},
				cli.StringFlag{
					Name:        "dictionary",
					Usage:       "Path of the municipality reference spreadsheet",
					Destination: &opts.dictionary,
				},
				cli.StringFlag{
					Name:        "disease",
					Usage:       "Disease module to apply (see list-diseases)",
					Destination: &opts.disease,
				},
				cli.StringFlag{
					Name:        "outbreak",
					Usage:       "Name of the target outbreak",
					Destination: &opts.outbreak,
				},
				cli.BoolFlag{
					Name:        "anonymize",
					Usage:       "Overwrite patient-identifying columns with placeholders",
					Destination: &opts.anonymize,
				},
				cli.IntFlag{
					Name:        "workers",
					Usage:       "Number of concurrent upload workers",
					Destination: &opts.workers,
				},
				cli.StringFlag{
					Name:        "dump-json",
					Usage:       "Also write the assembled cases to this file, one JSON object per line",
					Destination: &opts.dumpPath,
				},
				cli.BoolFlag{
					Name:        "dry-run",
					Usage:       "Map and dump only, without contacting Go.Data",
					Destination: &opts.dryRun,
				},
			},
			Action: func(c *cli.Context) error {
				return runImport(app.Writer, opts)
			},
		},
		{
			Name:  "list-outbreaks",
			Usage: "List the outbreaks available on the Go.Data instance",
			Action: func(c *cli.Context) error {
				apiClient, err := connect()
				if err != nil {
					return err
				}
				outbreaks, err := apiClient.ListOutbreaks()
				if err != nil {
					return err
				}
				table := tablewriter.NewWriter(app.Writer)
				table.SetHeader([]string{"ID", "Name"})
				for _, outbreak := range outbreaks {
					table.Append([]string{outbreak.ID, outbreak.Name})
				}
				table.Render()
				return nil
			},
		},
		{
			Name:  "list-diseases",
			Usage: "List the registered disease modules",
			Action: func(c *cli.Context) error {
				registry := disease.NewRegistry(translation.NewRegistry(), diseaseManifest()...)
				for _, name := range registry.Diseases() {
					fmt.Fprintln(app.Writer, name)
				}
				return nil
			},
		},
	}
	return app
}

type importOptions struct {
	file       string
	dictionary string
	disease    string
	outbreak   string
	dumpPath   string
	anonymize  bool
	dryRun     bool
	workers    int
}

// diseaseManifest lists every disease module shipped with the binary.
func diseaseManifest() []disease.Spec {
	return []disease.Spec{disease.Sarampo()}
}

func runImport(w io.Writer, opts importOptions) error {
	if opts.file == "" {
		return &sinanerrors.ConfigurationError{Msg: "an export file (--file) must be provided"}
	}
	if opts.disease == "" {
		return &sinanerrors.ConfigurationError{Msg: "a disease module (--disease) must be provided"}
	}
	if !opts.dryRun && opts.outbreak == "" {
		return &sinanerrors.ConfigurationError{Msg: "a target outbreak (--outbreak) must be provided"}
	}

	table, err := reader.ReadTable(opts.file)
	if err != nil {
		return err
	}

	var dictionary *location.Dictionary
	if opts.dictionary != "" {
		if dictionary, err = reader.ReadDictionary(opts.dictionary); err != nil {
			return err
		}
	}

	anonymize := opts.anonymize || utils.GetEnvBool("SINAN_ANONYMIZE", false)
	preprocess.Preprocessor{Logger: log.Import}.Run(&table, anonymize)

	translations := translation.Default()
	imp := importer.Importer{
		Translations: translations,
		Diseases:     disease.NewRegistry(translations, diseaseManifest()...),
		Dictionary:   dictionary,
		Logger:       log.Import,
	}

	var (
		apiClient  *client.GoDataClient
		outbreakID string
	)
	if !opts.dryRun {
		if apiClient, err = connect(); err != nil {
			return err
		}
		if imp.Locations, err = buildResolver(apiClient); err != nil {
			return err
		}
		if outbreakID, err = resolveOutbreak(apiClient, opts.outbreak); err != nil {
			return err
		}
	}

	cases, err := imp.MapCases(table, opts.disease, outbreakID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Mapped %d cases from %s\n", len(cases), opts.file)

	if opts.dumpPath != "" {
		if err := writer.WriteCases(opts.dumpPath, cases); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %d cases to %s\n", len(cases), opts.dumpPath)
	}
	if opts.dryRun {
		return nil
	}

	up := uploader.New(apiClient, log.Upload)
	if opts.workers > 0 {
		up.MaxWorkers = opts.workers
	}
	results, err := up.SendCases(outbreakID, cases)
	if err != nil {
		return err
	}
	failed := printResults(w, results)
	if len(results) > 0 && failed == len(results) {
		return cli.NewExitError("every case failed to upload", 1)
	}
	return nil
}

// connect builds the API client and, when credentials are configured, trades
// them for a session token.
func connect() (*client.GoDataClient, error) {
	apiClient, err := client.NewGoDataClient()
	if err != nil {
		return nil, err
	}
	if user := conf.GetEnv("SINAN_API_USERNAME"); user != "" {
		if err := apiClient.Login(user, conf.GetEnv("SINAN_API_PASSWORD")); err != nil {
			return nil, err
		}
	}
	return apiClient, nil
}

func buildResolver(apiClient client.APIClient) (*location.Resolver, error) {
	nodes, err := apiClient.HierarchicalLocations()
	if err != nil {
		return nil, err
	}

	country := conf.GetEnv("SINAN_COUNTRY")
	if country == "" {
		country = "Brasil"
	}
	root := location.FindCountry(nodes, country)
	if root == nil {
		return nil, &sinanerrors.ConfigurationError{
			Msg: fmt.Sprintf("country %q not present in the location tree", country),
		}
	}
	return location.NewResolver(root, log.Import, nil), nil
}

func resolveOutbreak(apiClient client.APIClient, name string) (string, error) {
	outbreaks, err := apiClient.ListOutbreaks()
	if err != nil {
		return "", err
	}
	for _, outbreak := range outbreaks {
		if outbreak.Name == name {
			return outbreak.ID, nil
		}
	}
	return "", &sinanerrors.ConfigurationError{
		Msg: fmt.Sprintf("outbreak %q not found on the Go.Data instance", name),
	}
}

func printResults(w io.Writer, results []models.UploadResult) int {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Visual ID", "Status", "Response ID", "Error"})
	failed := 0
	for _, result := range results {
		if result.Status == constants.UploadError {
			failed++
		}
		table.Append([]string{result.VisualID, result.Status, result.ResponseID, result.ErrorMessage})
	}
	table.Render()
	fmt.Fprintf(w, "%d succeeded, %d failed\n", len(results)-failed, failed)
	return failed
}
