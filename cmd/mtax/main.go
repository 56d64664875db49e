package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mtax/tax-analyzer/internal/calculation"
	"github.com/mtax/tax-analyzer/internal/config"
	"github.com/mtax/tax-analyzer/internal/domain"
	"github.com/mtax/tax-analyzer/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mtax %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "mtax",
	Short: "2026 Marginal Tax Analyzer CLI",
	Long:  "Computes the marginal federal income tax rate curve for a hypothetical 2026 tax year",
}

var graphCmd = &cobra.Command{
	Use:   "graph [profile-file]",
	Short: "Compute the marginal rate curve for an income profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()

		policyFile, _ := cmd.Flags().GetString("policy")
		table, err := parser.LoadPolicyOrDefault(policyFile)
		if err != nil {
			return err
		}
		calc, err := calculation.NewTaxYearCalculator(table)
		if err != nil {
			return err
		}

		profile, err := profileFromCmd(cmd, args, parser)
		if err != nil {
			return err
		}

		sweep := calculation.DefaultSweep(profile)
		if maxFlag, _ := cmd.Flags().GetFloat64("sweep-max"); maxFlag != 0 {
			if math.IsNaN(maxFlag) || math.IsInf(maxFlag, 0) {
				return domain.NewInvalidInputError("sweep-max", "must be finite")
			}
			sweep.Max = decimal.NewFromFloat(maxFlag)
		}
		if points, _ := cmd.Flags().GetInt("points"); points != 0 {
			sweep.Points = points
		}

		curve, err := calc.Compute(profile, sweep)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("unsupported format %q (supported: %v)", format, output.FormatNames())
		}
		data, err := f.Format(curve)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

// profileFromCmd builds the income profile from a YAML file argument or
// from flags when no file is given.
func profileFromCmd(cmd *cobra.Command, args []string, parser *config.InputParser) (*domain.IncomeProfile, error) {
	if len(args) == 1 {
		return parser.LoadProfile(args[0])
	}

	wages, _ := cmd.Flags().GetFloat64("wages")
	ltcg, _ := cmd.Flags().GetFloat64("ltcg")
	ss, _ := cmd.Flags().GetFloat64("social-security")
	for _, v := range []struct {
		name  string
		value float64
	}{{"wages", wages}, {"ltcg", ltcg}, {"social-security", ss}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return nil, domain.NewInvalidInputError(v.name, "must be finite")
		}
	}

	status, _ := cmd.Flags().GetString("status")
	userSenior, _ := cmd.Flags().GetBool("senior")
	spouseSenior, _ := cmd.Flags().GetBool("spouse-senior")
	showIRMAA, _ := cmd.Flags().GetBool("show-irmaa")

	profile := &domain.IncomeProfile{
		FilingStatus:   domain.FilingStatus(status),
		OrdinaryWages:  decimal.NewFromFloat(wages),
		LTCG:           decimal.NewFromFloat(ltcg),
		SocialSecurity: decimal.NewFromFloat(ss),
		IsUserSenior:   userSenior,
		IsSpouseSenior: spouseSenior,
		ShowIRMAA:      showIRMAA,
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return profile, nil
}

func init() {
	graphCmd.Flags().Float64("wages", 0, "Ordinary wages in dollars")
	graphCmd.Flags().Float64("ltcg", 0, "Long-term capital gains in dollars")
	graphCmd.Flags().Float64("social-security", 0, "Annual Social Security benefit in dollars")
	graphCmd.Flags().String("status", string(domain.FilingSingle), "Filing status (single or married_filing_jointly)")
	graphCmd.Flags().Bool("senior", false, "Filer is 65 or older")
	graphCmd.Flags().Bool("spouse-senior", false, "Spouse is 65 or older (joint filers only)")
	graphCmd.Flags().Bool("show-irmaa", true, "Annotate the next IRMAA threshold")
	graphCmd.Flags().Float64("sweep-max", 0, "Upper bound of the income sweep (default: 2x total income)")
	graphCmd.Flags().Int("points", 0, "Number of sample points (default 800)")
	graphCmd.Flags().String("policy", "", "Policy table override YAML file")
	graphCmd.Flags().String("format", "console", "Output format (console, csv, json, html, chart)")

	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
