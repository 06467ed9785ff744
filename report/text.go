package report

const (
	ruleWidth = 50

	bannerTitle  = "🔐 VibSDK Secret Generator"
	bannerIntro  = "Generating cryptographically secure secrets for your VibSDK deployment..."
	nextStepsTag = "📋 Next Steps:"
	envFormatTag = "📝 .env Format:"
	successLine  = "✅ Secrets generated successfully!"
	reminderTag  = "⚠️  Security Reminder:"
)

var nextSteps = []string{
	"1. Copy the secrets above",
	"2. Add them to your deployment configuration:",
}

var deploymentTargets = []string{
	`   • For "Deploy to Cloudflare" button: Enter during deployment flow`,
	"   • For manual deployment: Add to .prod.vars file",
	"   • For local development: Add to .dev.vars file",
}

const finalStep = "3. Keep these secrets secure and never commit them to version control"

var securityReminders = []string{
	"• Store these secrets securely",
	"• Never commit them to version control",
	"• Use different secrets for dev and production",
	"• Rotate secrets regularly",
}
