// Package report prints the startup banner and the end-of-run summary.
package report

import (
	"fmt"
	"io"
	"strings"
)

var rule = strings.Repeat("=", 60)

const banner = `
    ╔══════════════════════════════════════════════════════════╗
    ║                                                          ║
    ║          🚀 DESPLIEGUE ENTERSYS ADMIN PANEL 🚀          ║
    ║                                                          ║
    ╚══════════════════════════════════════════════════════════╝
    `

func Banner(w io.Writer) {
	fmt.Fprintln(w, banner)
}

// Summary prints the success or failure block. ok is the runner's aggregate
// flag and is the only input to the choice.
func Summary(w io.Writer, ok bool, serviceURL string) {
	fmt.Fprintf(w, "\n%s\n", rule)
	if ok {
		fmt.Fprintf(w, `
    ✅ ¡DESPLIEGUE COMPLETADO EXITOSAMENTE!

    🌐 El admin panel está disponible en:
       👉 %[1]s

    📊 Para verificar:
       - docker-compose ps
       - docker-compose logs -f
       - curl -I %[1]s

`, serviceURL)
	} else {
		fmt.Fprint(w, `
    ❌ El despliegue tuvo problemas

    🔍 Para investigar:
       - docker-compose logs
       - docker-compose ps
       - git status

`)
	}
	fmt.Fprintln(w, rule)
}
