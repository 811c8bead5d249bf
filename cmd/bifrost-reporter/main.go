// bifrost-reporter aggregates the per-sample YAML results of the Bifrost
// pipeline across two cohorts and writes per-analysis comparison tables.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/ssi-dk/bifrost-reporter/report"
)

func main() {
	var configPath, logPath, outputFolder string

	flag.StringVar(&configPath, "config", "", "Path to the YAML run configuration.")
	flag.StringVar(&logPath, "log", "", "Path to the log file. Defaults to stderr.")
	flag.StringVar(&outputFolder, "output_folder", "output", "Folder that receives the comparison CSV files.")
	flag.Parse()

	if configPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalln(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	log.Println("Launched bifrost-reporter")

	cfg, err := report.LoadConfig(configPath)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Reporting for project", cfg.Project.Name)

	if err := report.Run(cfg, outputFolder, ','); err != nil {
		log.Fatalln(err)
	}
}
