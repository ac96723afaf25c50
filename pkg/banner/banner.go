package banner

import (
	"fmt"

	"smartgrocery/pkg/config"
)

const banner = `
███████╗███╗   ███╗ █████╗ ██████╗ ████████╗     ██████╗ ██████╗  ██████╗  ██████╗███████╗██████╗ ██╗   ██╗
██╔════╝████╗ ████║██╔══██╗██╔══██╗╚══██╔══╝    ██╔════╝ ██╔══██╗██╔═══██╗██╔════╝██╔════╝██╔══██╗╚██╗ ██╔╝
███████╗██╔████╔██║███████║██████╔╝   ██║       ██║  ███╗██████╔╝██║   ██║██║     █████╗  ██████╔╝ ╚████╔╝
╚════██║██║╚██╔╝██║██╔══██║██╔══██╗   ██║       ██║   ██║██╔══██╗██║   ██║██║     ██╔══╝  ██╔══██╗  ╚██╔╝
███████║██║ ╚═╝ ██║██║  ██║██║  ██║   ██║       ╚██████╔╝██║  ██║╚██████╔╝╚██████╗███████╗██║  ██║   ██║
╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝        ╚═════╝ ╚═╝  ╚═╝ ╚═════╝  ╚═════╝╚══════╝╚═╝  ╚═╝   ╚═╝
`

// Print writes the startup banner with the effective configuration.
func Print(eff config.Effective, version string) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", eff.Addr)
	fmt.Printf("DB Path:  %s\n", eff.DBPath)
	if version != "" {
		fmt.Printf("Version:  %s\n", version)
	}
	fmt.Printf("Config:   %s\n", eff.Source)

	if eff.Config != nil {
		if eff.Config.Redis.URL != "" {
			fmt.Println("Broadcast: redis (" + eff.Config.Redis.URL + ")")
		} else {
			fmt.Println("Broadcast: in-process only (set redis.url for multi-instance sync)")
		}
		if eff.Config.Refill.Enabled {
			cron := eff.Config.Refill.Cron
			if cron == "" {
				cron = "*/5 * * * *"
			}
			fmt.Printf("Refill:   enabled (cron=%s)\n", cron)
		} else {
			fmt.Println("Refill:   disabled")
		}
	}

	fmt.Println("\n== Examples ===================================================")
	fmt.Println("curl -X POST 'http://<host>:<port>/api/auth/login' -d '{\"email\":\"manager@demo.com\",\"password\":\"password\"}'")
	fmt.Println("curl -H 'Authorization: Bearer <token>' 'http://<host>:<port>/api/messages?threadId=thread-manager-2-supplier-3'")
	fmt.Println("\n== Logs =======================================================")
}
