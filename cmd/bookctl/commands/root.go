package commands

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jhoicas/catalogo-libros/internal/client"
	"github.com/jhoicas/catalogo-libros/pkg/logger"
	"github.com/jhoicas/catalogo-libros/pkg/money"
)

const defaultServer = "http://localhost:3001"

// options flags globales compartidas por los subcomandos.
type options struct {
	v *viper.Viper
}

func (o *options) client() *client.Client {
	log := logger.New(logger.Config{Env: "development", Level: o.v.GetString("log-level"), Output: os.Stderr})
	return client.New(o.v.GetString("server"), client.WithLogger(log))
}

func (o *options) timeout() time.Duration {
	return o.v.GetDuration("timeout")
}

func (o *options) money() *money.Formatter {
	return money.NewFormatter(o.v.GetString("locale"), o.v.GetString("currency"))
}

// NewRootCmd crea el comando raíz.
func NewRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:          "bookctl",
		Short:        "Cliente de línea de comandos del catálogo de libros",
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("server", defaultServer, "URL base de la API")
	pf.Duration("timeout", 10*time.Second, "tiempo máximo por petición")
	pf.String("locale", "pt-BR", "idioma para formatear precios")
	pf.String("currency", "R$", "símbolo de moneda")
	pf.String("log-level", "warn", "nivel de log del cliente")
	_ = opts.v.BindPFlags(pf)
	opts.v.SetEnvPrefix("BOOKCTL")
	opts.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	opts.v.AutomaticEnv()

	rootCmd.AddCommand(
		newListCommand(opts),
		newAddCommand(opts),
		newDeleteCommand(opts),
	)

	return rootCmd
}
