package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ivaneres/coffee/internal/api"
	"github.com/Ivaneres/coffee/internal/util"
)

var beansCmd = &cobra.Command{
	Use:   "beans",
	Short: "List and manage coffee beans",
}

var beansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your beans",
	Args:  cobra.NoArgs,
	RunE:  runBeansList,
}

var beansAddCmd = &cobra.Command{
	Use:   "add <variety>",
	Short: "Add a bean",
	Args:  cobra.ExactArgs(1),
	RunE:  runBeansAdd,
}

var beansDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a bean and all its records",
	Args:  cobra.ExactArgs(1),
	RunE:  runBeansDelete,
}

var (
	beanSellerFlag  string
	beanRoasterFlag string
	beanRoastFlag   string
)

func init() {
	beansAddCmd.Flags().StringVar(&beanSellerFlag, "seller", "", "where the bean was bought")
	beansAddCmd.Flags().StringVar(&beanRoasterFlag, "roaster", "", "who roasted the bean")
	beansAddCmd.Flags().StringVar(&beanRoastFlag, "roast", "", "roast level (Light, Medium-Light, Medium, Medium-Dark, Dark)")

	beansCmd.AddCommand(beansListCmd, beansAddCmd, beansDeleteCmd)
	rootCmd.AddCommand(beansCmd)
}

func runBeansList(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	beans, err := app.client.ListBeans(cmd.Context())
	if err != nil {
		return err
	}
	if len(beans) == 0 {
		fmt.Println("No beans yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVARIETY\tROASTER\tROAST\tSELLER")
	for _, bean := range beans {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			bean.ID, bean.Variety,
			orDash(bean.Roaster), orDash(bean.RoastLevel), orDash(bean.Seller))
	}
	return w.Flush()
}

func runBeansAdd(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	req := api.BeanCreate{
		Variety:    args[0],
		Seller:     optionalFlag(beanSellerFlag),
		Roaster:    optionalFlag(beanRoasterFlag),
		RoastLevel: optionalFlag(beanRoastFlag),
	}
	bean, err := app.client.CreateBean(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Printf("Created bean %d (%s)\n", bean.ID, bean.Variety)
	return nil
}

func runBeansDelete(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	defer app.close()
	if err := app.requireAuth(); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := app.client.DeleteBean(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("Deleted bean %d\n", id)
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func orDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func optionalFlag(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func formatMeasure(p *float64) string {
	if p == nil {
		return "-"
	}
	return util.FormatFloat(*p)
}

func formatRating(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}
