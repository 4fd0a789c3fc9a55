// opsctl: utilidades de administración y cliente de línea de comandos de la API.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/opsdesk-api/internal/application/auth"
	"github.com/jhoicas/opsdesk-api/internal/application/dto"
	"github.com/jhoicas/opsdesk-api/internal/bootstrap"
	"github.com/jhoicas/opsdesk-api/internal/client"
	"github.com/jhoicas/opsdesk-api/pkg/config"
)

var (
	apiURL   string
	apiToken string
	page     int
	limit    int
)

var rootCmd = &cobra.Command{
	Use:           "opsctl",
	Short:         "Administración y cliente de la API de operaciones",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var bootstrapAdminCmd = &cobra.Command{
	Use:   "bootstrap-admin",
	Short: "Crea un usuario ADMIN directamente en la base configurada",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DB.Driver == config.DriverMemory {
			fmt.Fprintln(os.Stderr, "aviso: DB_DRIVER=memory, el usuario se pierde al terminar el comando")
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		repos, closeDB, err := bootstrap.OpenRepositories(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer closeDB()

		uc := auth.NewAuthUseCase(repos.Users, nil, auth.JWTConfig{Secret: cfg.JWT.Secret})
		user, err := uc.CreateAdmin(ctx, dto.RegisterRequest{Name: name, Email: email, Password: password})
		if err != nil {
			return err
		}
		fmt.Printf("ADMIN creado: %s <%s>\n", user.ID, user.Email)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Inicia sesión e imprime el token (exportarlo como OPSDESK_TOKEN)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().Login(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "sesión de %s (%s) hasta %s\n", out.User.Email, out.User.Role, out.ExpiresAt.Format(time.RFC3339))
		fmt.Println(out.Token)
		return nil
	},
}

var jobsCmd = &cobra.Command{Use: "jobs", Short: "Solicitudes de trabajo"}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista solicitudes",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().ListJobRequests(cmd.Context(), page, limit)
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "ID\tTÍTULO\tPRIORIDAD\tESTADO\tCATEGORÍA")
		for _, j := range out.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Priority, j.Status, j.Category)
		}
		printPagination(w, out.Pagination)
		return w.Flush()
	},
}

var jobsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Crea una solicitud",
	RunE: func(cmd *cobra.Command, args []string) error {
		var in dto.CreateJobRequestRequest
		in.Title, _ = cmd.Flags().GetString("title")
		in.Description, _ = cmd.Flags().GetString("description")
		in.Priority, _ = cmd.Flags().GetString("priority")
		in.Category, _ = cmd.Flags().GetString("category")
		in.RequestedBy, _ = cmd.Flags().GetString("requested-by")
		out, err := newClient().CreateJobRequest(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Println(out.ID)
		return nil
	},
}

var jobsStatusCmd = &cobra.Command{
	Use:   "status <id> <estado>",
	Short: "Cambia el estado (OPEN, IN_PROGRESS, COMPLETED, CANCELLED)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().UpdateJobRequestStatus(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", out.ID, out.Status)
		return nil
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina una solicitud (ADMIN o MANAGER)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newClient().DeleteJobRequest(cmd.Context(), args[0])
	},
}

var deliveriesCmd = &cobra.Command{Use: "deliveries", Short: "Entregas"}

var deliveriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista entregas",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().ListDeliveries(cmd.Context(), page, limit)
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "ID\tGUÍA\tÍTEM\tESTADO\tDESTINATARIO")
		for _, d := range out.Data {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.TrackingNo, d.ItemName, d.Status, d.ReceiverName)
		}
		printPagination(w, out.Pagination)
		return w.Flush()
	},
}

var deliveriesStatusCmd = &cobra.Command{
	Use:   "status <id> <estado>",
	Short: "Cambia el estado (PENDING, IN_TRANSIT, DELIVERED)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().UpdateDeliveryStatus(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", out.ID, out.Status)
		return nil
	},
}

var mealsCmd = &cobra.Command{Use: "meals", Short: "Conteo diario de comidas"}

var mealsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista conteos",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := newClient().ListMealCounts(cmd.Context(), page, limit)
		if err != nil {
			return err
		}
		w := table()
		fmt.Fprintln(w, "FECHA\tDESAYUNO\tALMUERZO\tCENA\tTOTAL")
		for _, m := range out.Data {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n", m.Date, m.Breakfast, m.Lunch, m.Dinner, m.Total)
		}
		printPagination(w, out.Pagination)
		return w.Flush()
	},
}

var mealsSaveCmd = &cobra.Command{
	Use:   "save <YYYY-MM-DD> <desayuno> <almuerzo> <cena>",
	Short: "Crea o reemplaza el conteo de una fecha",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := make([]int, 3)
		for i, s := range args[1:] {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("argumento %d: %q no es un número", i+2, s)
			}
			counts[i] = n
		}
		out, err := newClient().SaveMealCount(cmd.Context(), dto.SaveMealCountRequest{
			Date: args[0], Breakfast: &counts[0], Lunch: &counts[1], Dinner: &counts[2],
		})
		if err != nil {
			return err
		}
		fmt.Printf("%s total %d\n", out.Date, out.Total)
		return nil
	},
}

func newClient() *client.Client {
	return client.New(apiURL, client.WithToken(apiToken))
}

func table() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printPagination(w *tabwriter.Writer, p dto.Pagination) {
	fmt.Fprintf(w, "\npágina %d de %d (%d en total)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", envOr("OPSDESK_API", "http://localhost:8080/api/v1"), "URL base de la API")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", os.Getenv("OPSDESK_TOKEN"), "JWT (por defecto OPSDESK_TOKEN)")

	bootstrapAdminCmd.Flags().String("name", "Administrador", "nombre")
	bootstrapAdminCmd.Flags().String("email", "", "email")
	bootstrapAdminCmd.Flags().String("password", "", "contraseña (mínimo 8 caracteres)")
	_ = bootstrapAdminCmd.MarkFlagRequired("email")
	_ = bootstrapAdminCmd.MarkFlagRequired("password")

	for _, c := range []*cobra.Command{jobsListCmd, deliveriesListCmd, mealsListCmd} {
		c.Flags().IntVar(&page, "page", 1, "página")
		c.Flags().IntVar(&limit, "limit", 10, "tamaño de página (máx. 100)")
	}

	jobsCreateCmd.Flags().String("title", "", "título")
	jobsCreateCmd.Flags().String("description", "", "descripción")
	jobsCreateCmd.Flags().String("priority", "MEDIUM", "LOW, MEDIUM, HIGH o URGENT")
	jobsCreateCmd.Flags().String("category", "", "categoría")
	jobsCreateCmd.Flags().String("requested-by", "", "ID del solicitante (por defecto el usuario del token)")

	jobsCmd.AddCommand(jobsListCmd, jobsCreateCmd, jobsStatusCmd, jobsDeleteCmd)
	deliveriesCmd.AddCommand(deliveriesListCmd, deliveriesStatusCmd)
	mealsCmd.AddCommand(mealsListCmd, mealsSaveCmd)
	rootCmd.AddCommand(bootstrapAdminCmd, loginCmd, jobsCmd, deliveriesCmd, mealsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
