package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/MoneyManage/MoneyManage/internal/advice"
	"github.com/MoneyManage/MoneyManage/internal/derive"
	"github.com/MoneyManage/MoneyManage/internal/service"
	"github.com/spf13/cobra"
)

func adviseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "advise [question]",
		Short: "Get guidance based on your current numbers",
		Long: `Asks the built-in advisor about your finances. The advisor sees derived
figures only (net worth, debt, savings rate), never raw transactions.
Answers are cached against the figures they were computed from.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns := a.Ledger.Transactions()
			summary := derive.NetWorth(a.Ledger.Assets(), txns)
			snapshot := service.AdviceSnapshot{
				NetWorth:    summary.NetWorth,
				TotalDebt:   derive.TotalOutstanding(derive.DebtLedger(txns)),
				SavingsRate: derive.SavingsRate(txns, time.Now()),
			}

			question := "How am I doing this month?"
			if len(args) > 0 {
				question = strings.Join(args, " ")
			}

			var cache advice.Cache
			if a.Store != nil {
				cache = a.Store
			}
			advisor := advice.NewCachedAdvisor(advice.RuleAdvisor{}, cache)
			answer, err := advisor.Advise(ctx, snapshot, question)
			if err != nil {
				return err
			}

			fmt.Println(TitleStyle.Render("Advice"))
			fmt.Println(answer)
			return nil
		},
	}
}
