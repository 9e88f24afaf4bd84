package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/taxfolio/taxcalc/internal/calculation"
	"github.com/taxfolio/taxcalc/internal/config"
	"github.com/taxfolio/taxcalc/internal/domain"
	"github.com/taxfolio/taxcalc/internal/output"
	"github.com/taxfolio/taxcalc/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxcalc",
	Short: "Federal and state tax estimator",
	Long:  "Estimates federal income tax, payroll taxes, and state income taxes from gross income and filing status",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate taxes for a single scenario",
	Run: func(cmd *cobra.Command, args []string) {
		income, _ := cmd.Flags().GetString("income")
		spouseIncome, _ := cmd.Flags().GetString("spouse-income")
		statusFlag, _ := cmd.Flags().GetString("status")
		state, _ := cmd.Flags().GetString("state")
		format, _ := cmd.Flags().GetString("format")

		status, err := domain.ParseFilingStatus(statusFlag)
		if err != nil {
			log.Fatal(err)
		}

		incomes, err := parseIncomes(income, spouseIncome)
		if err != nil {
			log.Fatal(err)
		}

		engine := calculation.NewEngine(loadTaxData(cmd))
		result, err := engine.Calculate(incomes, status, state)
		if err != nil {
			log.Fatal(err)
		}

		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("unknown output format: %s (valid: console, json, csv)", format)
		}
		rendered, err := formatter.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(rendered))
	},
}

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "List supported states and jurisdictions",
	Run: func(cmd *cobra.Command, args []string) {
		data := loadTaxData(cmd)
		for _, option := range data.JurisdictionOptions() {
			if option.Code == "" {
				fmt.Printf("%-28s %s\n", "(none)", option.Display)
				continue
			}
			fmt.Printf("%-28s %s\n", option.Code, option.Display)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [tax-data-file]",
	Short: "Validate a tax data file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewTaxDataParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Tax data file %s is valid\n", args[0])
	},
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Run the interactive calculator",
	Run: func(cmd *cobra.Command, args []string) {
		engine := calculation.NewEngine(loadTaxData(cmd))
		program := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// loadTaxData returns the built-in tables unless --tax-data points at
// an override file.
func loadTaxData(cmd *cobra.Command) *domain.TaxData {
	path, _ := cmd.Flags().GetString("tax-data")
	if path == "" {
		return config.DefaultTaxData()
	}
	data, err := config.NewTaxDataParser().LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return data
}

func parseIncomes(income, spouseIncome string) ([]decimal.Decimal, error) {
	if income == "" {
		return nil, fmt.Errorf("--income is required")
	}
	primary, err := decimal.NewFromString(income)
	if err != nil {
		return nil, fmt.Errorf("invalid income %q: %w", income, err)
	}
	incomes := []decimal.Decimal{primary}
	if spouseIncome != "" {
		secondary, err := decimal.NewFromString(spouseIncome)
		if err != nil {
			return nil, fmt.Errorf("invalid spouse income %q: %w", spouseIncome, err)
		}
		incomes = append(incomes, secondary)
	}
	return incomes, nil
}

func init() {
	calculateCmd.Flags().StringP("income", "i", "", "Primary earner's gross income")
	calculateCmd.Flags().String("spouse-income", "", "Secondary earner's gross income (joint filing)")
	calculateCmd.Flags().StringP("status", "s", "single", "Filing status (single, joint)")
	calculateCmd.Flags().String("state", "", "Jurisdiction code (empty for federal only)")
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")

	for _, cmd := range []*cobra.Command{calculateCmd, statesCmd, interactiveCmd} {
		cmd.Flags().String("tax-data", "", "Path to a tax data override file")
	}

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(statesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
