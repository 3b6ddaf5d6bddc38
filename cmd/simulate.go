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
	"io/ioutil"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/building-physics/goairnet/InputParameters"
	"github.com/building-physics/goairnet/airnet"
	"github.com/building-physics/goairnet/readfiles"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate NETWORK_FILE",
	Short: "Assemble an airflow network model for solution",
	Long: `
Reads a network description file, assembles the node/link/element model,
computes the thermophysical node properties and reports the model summary
and system size a nonlinear solver would operate on.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		rp := processParams(cmd)
		if verbose {
			rp.Print()
		}
		recs, _, err := readfiles.ReadAirflowNetwork(args[0], verbose)
		if err != nil {
			log.Fatalf("simulate: %s", err)
		}
		model, err := airnet.NewModel(recs)
		if err != nil {
			log.Fatalf("simulate: %s", err)
		}
		model.SetProperties()
		if rp.Title != "" {
			model.Title = rp.Title
		}
		fmt.Print(model.Summary())
		pattern := model.JacobianPattern()
		log.Debugf("Jacobian pattern: %d x %d with %d nonzeros", model.Size, model.Size, pattern.NNZ())
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringP("params", "p", "", "YAML run parameters file")
	simulateCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
}

func processParams(cmd *cobra.Command) (rp *InputParameters.RunParameters) {
	rp = InputParameters.DefaultRunParameters()
	paramsFile, _ := cmd.Flags().GetString("params")
	if paramsFile == "" {
		return
	}
	data, err := ioutil.ReadFile(paramsFile)
	if err != nil {
		log.Fatalf("simulate: %s", err)
	}
	if err = rp.Parse(data); err != nil {
		log.Fatalf("simulate: parsing %s: %s", paramsFile, err)
	}
	return
}
