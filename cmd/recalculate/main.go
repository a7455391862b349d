package main

import (
	"ClinicSplit/cache"
	"ClinicSplit/calculations"
	"ClinicSplit/config"
	"ClinicSplit/database"
	"ClinicSplit/models"
	"ClinicSplit/repositories"
	"ClinicSplit/services"
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"gopkg.in/gomail.v2"
)

// diffTolerance is the threshold below which a stored snapshot field is
// considered equal to its recalculated value. Matches the rounding
// granularity of the currency.
const diffTolerance = 0.01

type fieldDiff struct {
	Name   string
	Stored float64
	Fresh  float64
}

type runSummary struct {
	Total     int
	Unchanged int
	Updated   int
	Skipped   int
	Failed    int
	DryRun    bool

	// Net drift across all changed records, fresh minus stored.
	OwnerDrift        float64
	ProfessionalDrift float64
}

func main() {
	dryRun := flag.Bool("dry-run", false, "report differences without writing anything")
	verbose := flag.Bool("verbose", false, "log every appointment, including unchanged ones")
	flag.Parse()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()
	if _, err := database.InitDB(ctx, cfg.DBURL); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := database.InitializeRedis(); err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}
	c, err := cache.NewCache()
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	professionalRepo := repositories.NewProfessionalRepository(c)
	procedureRepo := repositories.NewProcedureRepository(c)
	sourceRepo := repositories.NewSourceRepository(c)
	settingRepo := repositories.NewSettingRepository(c)
	ruleRepo := repositories.NewRuleRepository(c)
	appointmentRepo := repositories.NewAppointmentRepository(c)

	calculationService := services.NewCalculationService(
		professionalRepo, procedureRepo, sourceRepo, settingRepo, ruleRepo,
	)

	ref, err := calculationService.LoadReferenceData(ctx)
	if err != nil {
		log.Fatalf("failed to load reference data: %v", err)
	}
	if ref.OwnerProfessionalID == "" {
		log.Fatal("no owner professional could be resolved; set the owner_professional_id setting")
	}

	appointments, err := appointmentRepo.ListAll(ctx)
	if err != nil {
		log.Fatalf("failed to list appointments: %v", err)
	}

	summary := runSummary{Total: len(appointments), DryRun: *dryRun}
	var report strings.Builder

	for i := range appointments {
		appointment := &appointments[i]

		result, err := calculationService.CalculateForAppointment(ctx, appointment, ref)
		if err != nil {
			summary.Skipped++
			log.Printf("SKIP %s (%s): %v", appointment.ID, appointment.Date, err)
			fmt.Fprintf(&report, "skipped %s: %v\n", appointment.ID, err)
			continue
		}

		diffs := diffSnapshot(appointment, result)
		if len(diffs) == 0 {
			summary.Unchanged++
			if *verbose {
				log.Printf("OK   %s (%s): unchanged", appointment.ID, appointment.Date)
			}
			continue
		}

		summary.Updated++
		summary.OwnerDrift += result.FinalValueOwner - appointment.FinalValueOwner
		summary.ProfessionalDrift += result.FinalValueProfessional - appointment.FinalValueProfessional
		log.Printf("DIFF %s (%s): %d field(s) changed", appointment.ID, appointment.Date, len(diffs))
		for _, d := range diffs {
			line := fmt.Sprintf("  %s: %.2f -> %.2f", d.Name, d.Stored, d.Fresh)
			if *verbose {
				log.Print(line)
			}
			fmt.Fprintf(&report, "%s %s\n", appointment.ID, line)
		}

		if *dryRun {
			continue
		}
		services.ApplyResult(appointment, result)
		if err := appointmentRepo.UpdateSnapshot(ctx, appointment); err != nil {
			summary.Failed++
			log.Printf("FAIL %s (%s): %v", appointment.ID, appointment.Date, err)
			fmt.Fprintf(&report, "failed %s: %v\n", appointment.ID, err)
		}
	}

	mode := "apply"
	if *dryRun {
		mode = "dry-run"
	}
	log.Printf("Recalculation finished (%s): %d total, %d unchanged, %d updated, %d skipped, %d failed",
		mode, summary.Total, summary.Unchanged, summary.Updated, summary.Skipped, summary.Failed)
	if summary.Updated > 0 {
		log.Printf("Net drift: owner %+.2f, professional %+.2f",
			summary.OwnerDrift, summary.ProfessionalDrift)
	}

	if cfg.MailConfigured() && (summary.Updated > 0 || summary.Skipped > 0 || summary.Failed > 0) {
		if err := sendReport(cfg, summary, report.String()); err != nil {
			log.Printf("Failed to send recalculation report: %v", err)
		}
	}
}

// diffSnapshot compares every stored calculated field against the fresh
// result.
func diffSnapshot(appointment *models.Appointment, result *calculations.CalculationResult) []fieldDiff {
	pairs := []struct {
		name   string
		stored float64
		fresh  float64
	}{
		{"card_fee_percentage", appointment.CardFeePercentage, result.CardFeePercentage},
		{"card_fee_value", appointment.CardFeeValue, result.CardFeeValue},
		{"tax_percentage", appointment.TaxPercentage, result.TaxPercentage},
		{"tax_value", appointment.TaxValue, result.TaxValue},
		{"procedure_cost", appointment.ProcedureCost, result.ProcedureCost},
		{"total_procedure_cost", appointment.TotalProcedureCost, result.TotalProcedureCost},
		{"net_value", appointment.NetValue, result.NetValue},
		{"bonus_value", appointment.BonusValue, result.BonusValue},
		{"professional_share", appointment.ProfessionalShare, result.ProfessionalShare},
		{"final_value_owner", appointment.FinalValueOwner, result.FinalValueOwner},
		{"final_value_professional", appointment.FinalValueProfessional, result.FinalValueProfessional},
	}

	var diffs []fieldDiff
	for _, p := range pairs {
		if math.Abs(p.stored-p.fresh) > diffTolerance {
			diffs = append(diffs, fieldDiff{Name: p.name, Stored: p.stored, Fresh: p.fresh})
		}
	}
	return diffs
}

func sendReport(cfg *config.AppConfig, summary runSummary, body string) error {
	mode := "applied"
	if summary.DryRun {
		mode = "dry-run"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPUser)
	m.SetHeader("To", cfg.ReportEmail)
	m.SetHeader("Subject", fmt.Sprintf("Appointment recalculation (%s): %d updated, %d skipped",
		mode, summary.Updated, summary.Skipped))
	m.SetBody("text/plain", fmt.Sprintf(
		"Processed %d appointments.\nUnchanged: %d\nUpdated: %d\nSkipped: %d\nFailed: %d\nNet drift: owner %+.2f, professional %+.2f\n\n%s",
		summary.Total, summary.Unchanged, summary.Updated, summary.Skipped, summary.Failed,
		summary.OwnerDrift, summary.ProfessionalDrift, body))

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	return d.DialAndSend(m)
}
