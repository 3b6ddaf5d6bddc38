/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/building-physics/goairnet/airnet"
	"github.com/building-physics/goairnet/readfiles"
)

// summarizeCmd represents the summarize command
var summarizeCmd = &cobra.Command{
	Use:   "summarize NETWORK_FILE",
	Short: "Summarize an airflow network input file",
	Long: `
Reads a network description file and reports the title, the element count
per type, and the node and link counts, without assembling a model.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		log.Debugf("Opening input file %q", args[0])
		recs, title, err := readfiles.ReadAirflowNetwork(args[0], verbose)
		if err != nil {
			log.Fatalf("summarize: %s", err)
		}
		Summarize(os.Stdout, recs, title)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}

// Summarize writes the record-level report: title, per-kind element
// counts, node and link counts.
func Summarize(w io.Writer, recs []airnet.Record, title string) {
	if title != "" {
		fmt.Fprintln(w, "Title:", title)
	}
	fmt.Fprintf(w, "\nElements:\n=========\n")
	var (
		counts = make(map[string]int)
		nodes  int
		links  int
	)
	for _, rec := range recs {
		switch rec.Type {
		case airnet.ElementInput:
			counts[rec.Element.Kind]++
		case airnet.NodeInput:
			nodes++
		case airnet.LinkInput:
			links++
		}
	}
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(w, "%s %d\n", kind, counts[kind])
	}
	fmt.Fprintf(w, "\nNodes: %d\n\nLinks: %d\n", nodes, links)
}
