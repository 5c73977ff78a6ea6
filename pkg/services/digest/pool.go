package digest

import "github.com/risk-digest/risk-digest/pkg/models/domain"

// headlines are the rotating digest titles; one is picked per date.
var headlines = []string{
	"Strengthen Your Security Posture Today",
	"Essential Security Checks for Modern Apps",
	"Protect Your Infrastructure: Daily Reminders",
	"Security Best Practices You Should Know",
	"Harden Your Systems: Today's Focus Areas",
	"Critical Security Patterns to Implement",
	"Your Daily Security Improvement Guide",
	"Build Resilient Systems: Key Practices",
	"Security Fundamentals for Production Systems",
	"Reduce Risk: Today's Security Priorities",
}

// pool is the curated item set digests are sampled from.
var pool = []domain.DigestItem{
	{
		Type:  domain.ItemTip,
		Title: "Enable DNSSEC for your domain",
		Why:   "DNSSEC prevents DNS spoofing attacks by cryptographically signing DNS records",
		Fix:   "Contact your DNS provider to enable DNSSEC and add DS records to your registrar",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify SPF records are configured",
		Why:   "SPF records prevent email spoofing by specifying which servers can send email for your domain",
		Fix:   "Add a TXT record: 'v=spf1 include:_spf.google.com ~all' (adjust for your mail provider)",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement DMARC policy",
		Why:   "DMARC builds on SPF and DKIM to give domain owners control over email authentication",
		Fix:   "Add TXT record: 'v=DMARC1; p=quarantine; rua=mailto:dmarc@yourdomain.com'",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use HSTS headers",
		Why:   "HTTP Strict Transport Security forces browsers to only connect via HTTPS",
		Fix:   "Add header: 'Strict-Transport-Security: max-age=31536000; includeSubDomains'",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Scan for exposed .git directories",
		Why:   "Exposed .git folders can leak source code and sensitive configuration",
		Fix:   "Block access in web server config or use .htaccess: 'RedirectMatch 404 /\\.git'",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Rotate API keys quarterly",
		Why:   "Regular rotation limits the window of exposure if keys are compromised",
		Fix:   "Set calendar reminders and use secret management tools like HashiCorp Vault",
	},
	{
		Type:  domain.ItemTip,
		Title: "Enable MFA for all admin accounts",
		Why:   "Multi-factor authentication prevents account takeover even if passwords are stolen",
		Fix:   "Use authenticator apps (Google Authenticator, Authy) or hardware keys (YubiKey)",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Review third-party vendor access",
		Why:   "Excessive vendor permissions increase attack surface and compliance risk",
		Fix:   "Audit vendor access quarterly and apply principle of least privilege",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement Content Security Policy",
		Why:   "CSP headers prevent XSS attacks by controlling which resources can load",
		Fix:   "Start with: 'Content-Security-Policy: default-src 'self'; script-src 'self''",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use TLS 1.3 exclusively",
		Why:   "Older TLS versions have known vulnerabilities and weaker cipher suites",
		Fix:   "Update server config to disable TLS 1.0, 1.1, 1.2 and enable only TLS 1.3",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify backup encryption",
		Why:   "Unencrypted backups are a major data breach risk if storage is compromised",
		Fix:   "Enable encryption at rest and in transit for all backup solutions",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement rate limiting on APIs",
		Why:   "Rate limits prevent brute force attacks and API abuse",
		Fix:   "Use middleware like express-rate-limit or nginx limit_req module",
	},
	{
		Type:  domain.ItemTip,
		Title: "Scan dependencies for vulnerabilities",
		Why:   "Vulnerable dependencies are a common attack vector in supply chain attacks",
		Fix:   "Use tools like npm audit, pip-audit, or Snyk in your CI/CD pipeline",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Remove default credentials",
		Why:   "Default passwords are publicly known and exploited by automated scanners",
		Fix:   "Change all default passwords immediately after deployment",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Use parameterized queries",
		Why:   "Parameterized queries prevent SQL injection attacks",
		Fix:   "Never concatenate user input into SQL; use prepared statements instead",
	},
	{
		Type:  domain.ItemTip,
		Title: "Enable audit logging",
		Why:   "Audit logs are essential for incident response and compliance",
		Fix:   "Log authentication events, data access, and configuration changes",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify CORS configuration",
		Why:   "Misconfigured CORS can allow unauthorized cross-origin requests",
		Fix:   "Explicitly whitelist allowed origins instead of using '*'",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement session timeout",
		Why:   "Long-lived sessions increase risk of session hijacking",
		Fix:   "Set session timeout to 15-30 minutes for sensitive applications",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use security headers scanner",
		Why:   "Missing security headers leave applications vulnerable to common attacks",
		Fix:   "Use securityheaders.com to scan and implement recommended headers",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Disable directory listing",
		Why:   "Directory listing exposes file structure and sensitive files",
		Fix:   "Set 'Options -Indexes' in Apache or 'autoindex off' in nginx",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement password complexity requirements",
		Why:   "Weak passwords are easily cracked by brute force attacks",
		Fix:   "Require minimum 12 characters with mix of uppercase, lowercase, numbers, symbols",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use environment variables for secrets",
		Why:   "Hardcoded secrets in code are exposed in version control",
		Fix:   "Store secrets in .env files (gitignored) or secret management services",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify SSL certificate validity",
		Why:   "Expired certificates break HTTPS and expose users to MITM attacks",
		Fix:   "Set up automated renewal with Let's Encrypt or monitor expiry dates",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement input validation",
		Why:   "Unvalidated input leads to injection attacks and data corruption",
		Fix:   "Validate all user input on both client and server side",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use secure cookie flags",
		Why:   "Insecure cookies can be stolen via XSS or transmitted over HTTP",
		Fix:   "Set HttpOnly, Secure, and SameSite flags on all cookies",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Review firewall rules",
		Why:   "Overly permissive firewall rules expose unnecessary services",
		Fix:   "Apply principle of least privilege and close unused ports",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement security incident response plan",
		Why:   "Prepared response reduces damage and recovery time from breaches",
		Fix:   "Document procedures, assign roles, and conduct regular drills",
	},
	{
		Type:  domain.ItemTip,
		Title: "Enable database encryption at rest",
		Why:   "Unencrypted databases are vulnerable if storage media is compromised",
		Fix:   "Enable Transparent Data Encryption (TDE) or equivalent for your database",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify patch management process",
		Why:   "Unpatched systems are vulnerable to known exploits",
		Fix:   "Establish regular patching schedule and test updates before deployment",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Use principle of least privilege",
		Why:   "Excessive permissions increase blast radius of compromised accounts",
		Fix:   "Grant only minimum necessary permissions for each role",
	},
	{
		Type:  domain.ItemTip,
		Title: "Implement API authentication",
		Why:   "Unauthenticated APIs allow unauthorized access to data and functions",
		Fix:   "Use OAuth 2.0, JWT tokens, or API keys with proper validation",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Scan for exposed secrets in repos",
		Why:   "Committed secrets can be found by attackers scanning public repositories",
		Fix:   "Use tools like git-secrets or truffleHog to scan commit history",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement network segmentation",
		Why:   "Segmentation limits lateral movement in case of breach",
		Fix:   "Separate production, staging, and development networks with firewalls",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use Web Application Firewall (WAF)",
		Why:   "WAF protects against common web attacks like SQL injection and XSS",
		Fix:   "Deploy CloudFlare, AWS WAF, or ModSecurity",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Review user access permissions",
		Why:   "Stale permissions from former employees pose security risk",
		Fix:   "Conduct quarterly access reviews and remove unnecessary permissions",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement security awareness training",
		Why:   "Human error is the leading cause of security incidents",
		Fix:   "Conduct quarterly phishing simulations and security training",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use secure file upload validation",
		Why:   "Malicious file uploads can lead to remote code execution",
		Fix:   "Validate file types, scan for malware, and store uploads outside webroot",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify encryption in transit",
		Why:   "Unencrypted data transmission exposes sensitive information",
		Fix:   "Enforce HTTPS for all endpoints and use TLS for internal services",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement zero trust architecture",
		Why:   "Zero trust assumes breach and verifies every access request",
		Fix:   "Require authentication for all resources regardless of network location",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use security linters in CI/CD",
		Why:   "Automated security checks catch vulnerabilities before deployment",
		Fix:   "Integrate tools like Bandit (Python), ESLint security plugin (JS)",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify container image security",
		Why:   "Vulnerable base images introduce security risks to containerized apps",
		Fix:   "Scan images with Trivy or Clair and use minimal base images",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement data classification",
		Why:   "Classification ensures appropriate security controls for sensitive data",
		Fix:   "Label data as public, internal, confidential, or restricted",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use secure random number generation",
		Why:   "Weak randomness compromises cryptographic operations",
		Fix:   "Use crypto.randomBytes() or secrets module, not Math.random()",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Review cloud storage permissions",
		Why:   "Misconfigured S3 buckets and storage accounts lead to data leaks",
		Fix:   "Ensure buckets are private and use IAM policies for access control",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement security monitoring",
		Why:   "Real-time monitoring detects attacks and anomalies early",
		Fix:   "Use SIEM tools and set up alerts for suspicious activities",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use subresource integrity (SRI)",
		Why:   "SRI prevents compromised CDN resources from executing malicious code",
		Fix:   "Add integrity attribute to script and link tags loading external resources",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify mobile app security",
		Why:   "Mobile apps often have unique vulnerabilities like insecure storage",
		Fix:   "Use OWASP Mobile Security Testing Guide for comprehensive testing",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement disaster recovery plan",
		Why:   "Disasters and ransomware require tested recovery procedures",
		Fix:   "Document RTO/RPO, maintain offline backups, and test recovery quarterly",
	},
	{
		Type:  domain.ItemTip,
		Title: "Use security champions program",
		Why:   "Embedded security advocates improve security culture across teams",
		Fix:   "Designate security champions in each team and provide training",
	},
	{
		Type:  domain.ItemCheck,
		Title: "Verify API versioning strategy",
		Why:   "Deprecated API versions may have unpatched vulnerabilities",
		Fix:   "Maintain clear deprecation timeline and force upgrades for old versions",
	},
	{
		Type:  domain.ItemPattern,
		Title: "Implement secure software development lifecycle",
		Why:   "Security integrated throughout SDLC is more effective than bolt-on security",
		Fix:   "Include threat modeling, security reviews, and testing in each phase",
	},
}
