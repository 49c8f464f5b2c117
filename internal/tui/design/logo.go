package design

// ZelenkoLogo is the wordmark shown on the onboarding and home headers.
const ZelenkoLogo = `
███████╗███████╗██╗     ███████╗███╗   ██╗██╗  ██╗ ██████╗
╚══███╔╝██╔════╝██║     ██╔════╝████╗  ██║██║ ██╔╝██╔═══██╗
  ███╔╝ █████╗  ██║     █████╗  ██╔██╗ ██║█████╔╝ ██║   ██║
 ███╔╝  ██╔══╝  ██║     ██╔══╝  ██║╚██╗██║██╔═██╗ ██║   ██║
███████╗███████╗███████╗███████╗██║ ╚████║██║  ██╗╚██████╔╝
╚══════╝╚══════╝╚══════╝╚══════╝╚═╝  ╚═══╝╚═╝  ╚═╝ ╚═════╝`

// ZelenkoLogoMinimal is a single-line version for narrow terminals.
const ZelenkoLogoMinimal = `🌿 ZELENKO`

// LogoWidth is the column width of ZelenkoLogo.
const LogoWidth = 59

// Logo picks the wordmark that fits in width columns.
func Logo(width int) string {
	if width >= LogoWidth+4 {
		return ZelenkoLogo
	}
	return ZelenkoLogoMinimal
}
