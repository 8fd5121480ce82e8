package keywords

import "regexp"

// toolLexicon is the fixed tool/platform vocabulary. Hits are reported in
// the canonical form listed here.
var toolLexicon = []string{
	"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Terraform", "Ansible",
	"Helm", "Jenkins", "Git", "GitHub", "GitLab", "CircleCI", "Kafka",
	"RabbitMQ", "Spark", "Hadoop", "Airflow", "Snowflake", "Redshift",
	"BigQuery", "dbt", "PostgreSQL", "MySQL", "MongoDB", "DynamoDB",
	"Redis", "Elasticsearch", "Cassandra", "Grafana", "Prometheus",
	"Datadog", "Splunk", "Tableau", "Power BI", "Looker", "Linux", "React",
	"Angular", "Vue", "Node.js", "Django", "Flask", "FastAPI", "Spring",
	"Rails", "GraphQL", "gRPC", "TensorFlow", "PyTorch", "Scikit-learn",
	"Pandas", "NumPy", "SageMaker", "Databricks", "Jira", "Confluence",
	"Figma", "Salesforce", "Nginx", "OpenAI", "LangChain",
}

// corePhrasePatterns match domain-concept phrases: methodologies,
// architecture styles, and ML-adjacent terms.
var corePhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:machine learning|deep learning|natural language processing|computer vision|artificial intelligence|large language models?|data science|data engineering|reinforcement learning|generative AI)\b`),
	regexp.MustCompile(`(?i)\b(?:distributed systems|event-driven architecture|microservices architecture|service-oriented architecture|domain-driven design|cloud-native|high availability|fault tolerance|real-time processing|stream processing)\b`),
	regexp.MustCompile(`(?i)\b(?:continuous integration|continuous delivery|continuous deployment|test-driven development|infrastructure as code|agile development|software development lifecycle|object-oriented programming|functional programming|system design)\b`),
}

// secondaryPhrasePatterns match soft-skill and process phrases.
var secondaryPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:cross-functional collaboration|stakeholder management|project management|time management|problem[ -]solving|attention to detail|written and verbal communication|communication skills|team player|fast-paced environment)\b`),
	regexp.MustCompile(`(?i)\b(?:leadership|mentoring|mentorship|collaboration|ownership|initiative|adaptability|creativity|prioritization|documentation)\b`),
}

// acronymPattern matches acronym-shaped tokens: 2-6 uppercase letters,
// optionally hyphen- or slash-joined with another such token.
var acronymPattern = regexp.MustCompile(`\b[A-Z]{2,6}(?:[-/][A-Z]{2,6})?\b`)

// capitalizedPhrasePattern matches runs of 2-4 consecutive capitalized words.
var capitalizedPhrasePattern = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3}\b`)

// capitalizedTokenPattern matches a single capitalized word.
var capitalizedTokenPattern = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)

// fillerWords excludes common posting boilerplate from capitalized-phrase
// discovery. A phrase is dropped when any constituent word is listed here.
var fillerWords = map[string]bool{
	"the": true, "this": true, "that": true, "with": true, "from": true,
	"your": true, "our": true, "you": true, "will": true, "what": true,
	"when": true, "where": true, "why": true, "how": true, "who": true,
	"and": true, "for": true, "are": true, "about": true, "all": true,
	"job": true, "description": true, "company": true, "team": true,
	"role": true, "position": true, "apply": true, "please": true,
	"equal": true, "opportunity": true, "employment": true, "employer": true,
	"benefits": true, "salary": true, "location": true, "remote": true,
	"candidate": true, "candidates": true, "applicants": true,
	"responsibilities": true, "requirements": true, "qualifications": true,
	"experience": true, "years": true, "degree": true, "bachelor": true,
	"master": true, "must": true, "have": true, "work": true, "working": true,
	"ability": true, "strong": true, "preferred": true, "required": true,
	"including": true, "such": true, "more": true, "other": true, "join": true,
	"should": true, "into": true, "across": true, "within": true, "their": true,
}
