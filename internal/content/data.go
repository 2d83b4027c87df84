package content

var Owner = Profile{
	Name:      "Raahul Krishna Durairaju",
	Headline:  "AI/ML Engineer | MLOps & Real-Time AI Systems",
	Summary:   `Master's student in Computer Science at Cal State Fullerton, building scalable AI systems that deliver measurable impact. Specialized in MLOps, Computer Vision, real-time AI pipelines, and cloud-based deployment with Python, PyTorch, TensorFlow, and AWS.`,
	ResumeURL: "https://drive.google.com/file/d/1eZ2rAVqBIQ-LDEqhWimBN2Lw22ZoRLAj/view?usp=sharing",
	About: []string{
		`I'm a Master's student in Computer Science at Cal State Fullerton and hold two AWS certifications: Cloud Practitioner and AI Practitioner. I specialize in building scalable AI solutions with interests in computer vision, MLOps, real-time AI systems, and cloud-based machine learning applications.`,
		`My work includes DevOps Orchestra, which automates 95% of software delivery workflows using AI agents and Kafka; BibliophileAI, a microservices-based book recommendation platform; and a real-time fraud detection pipeline on AWS Lambda with sub-3-second latency and 99.2% precision.`,
	},
	Education: []Education{
		{Degree: "Master of Science in Computer Science", Institution: "California State University Fullerton", Period: "August 2024 - May 2026"},
		{Degree: "Bachelor of Technology (Honours) in Computer Science & Engineering", Institution: "Puducherry Technological University", Period: "July 2020 - May 2024"},
	},
	Certifications: []string{
		"AWS Certified AI Practitioner (Aug 2025)",
		"AWS Certified Cloud Practitioner (Jul 2025)",
		"Machine Learning Specialization - Stanford (June 2023)",
	},
	Stats: []Stat{
		{Value: "10+", Label: "Projects"},
		{Value: "3.95", Label: "GPA"},
	},
}

var Experiences = []Experience{
	{
		Title:    "EG-RSCA Research Assistant",
		Company:  "UROC, CSUF",
		Location: "Fullerton, CA",
		Duration: "January 2025 – August 2025",
		Skills:   []string{"AI Algorithms", "Fleet Management", "Real-time Systems", "Automation", "Matlab"},
		Achievements: []string{
			"Designed and developed automation algorithms for heavy equipment fleet management to improve operational efficiency in construction sites.",
			"Implemented real-time tracking and collision avoidance using sensor data, reducing potential equipment downtime by 20%.",
			"Collaborated with interdisciplinary teams to integrate AI-driven decision-making models enhancing fleet utilization by 15%.",
		},
	},
	{
		Title:    "Computer Vision Research Intern",
		Company:  "VSquare MediTech",
		Location: "New Delhi, India",
		Duration: "April 2024 – July 2024",
		Skills:   []string{"PyTorch", "OpenCV", "TensorFlow", "Computer Vision", "MxNet"},
		Achievements: []string{
			"Improved eye treatment diagnostics accuracy by 15% with computer vision models for retinal and facial image analysis.",
			"Integrated face emotion recognition into diagnostics software, achieving 92% classification accuracy.",
			"Translated state-of-the-art computer vision research into production-ready solutions.",
			"Ensured reliability through unit testing, model validation, and cross-framework benchmarking.",
		},
	},
	{
		Title:    "Web Developer Intern",
		Company:  "Techcellent IT Solutions",
		Location: "Pondicherry, India",
		Duration: "April 2023 – May 2023",
		Skills:   []string{"HTML5", "Bootstrap CSS", "AJAX", "PHP", "MySQL"},
		Achievements: []string{
			"Developed and deployed a dynamic website for a gaming center with user registration and database retrieval.",
			"Improved customer engagement by 25% through intuitive UI/UX and real-time interactions.",
			"Built backend services using PHP and MySQL with JavaScript and AJAX on the frontend.",
		},
	},
}

var Projects = []Project{
	{
		Title:       "BibliophileAI",
		Category:    "AI & Microservices",
		Description: "Social book recommendation system using a hybrid ensemble of collaborative filtering, deep learning and graph neural networks on a Kubernetes-native microservices stack.",
		Tech:        []string{"FastAPI", "React", "Kubernetes", "Apache Kafka", "PyTorch", "Pinecone", "Neo4j", "Redis", "Airflow", "Prometheus"},
		GithubLink:  "https://github.com/RAAHUL-tech/BibliophileAI",
		Featured:    true,
	},
	{
		Title:       "DevOps Orchestra",
		Category:    "AI-Powered DevOps",
		Description: "Multi-agent DevOps automation platform covering code validation, deployment, rollback and observability, driven by GitHub webhooks.",
		Tech:        []string{"LangGraph", "Kafka", "AI Agents", "Python", "Slack API", "Docker", "CI/CD", "Terraform"},
		GithubLink:  "https://github.com/Devops-orchestra/DevOps-Orchestra",
		Featured:    true,
	},
	{
		Title:       "Real-time Fraud Detection Pipeline",
		Category:    "MLOps & Production ML",
		Description: "Serverless credit card fraud detection with <3s latency on AWS Lambda and SQS, 99.2% precision, full MLOps lifecycle.",
		Tech:        []string{"AWS Lambda", "Amazon SQS", "PyTorch Lightning", "ONNX", "MLflow", "Weights & Biases", "DVC", "Hydra", "Evidently AI", "GitHub Actions", "Docker"},
		GithubLink:  "https://github.com/RAAHUL-tech/Real-Time-Fraud-Detection-Pipeline",
		Featured:    true,
	},
	{
		Title:       "Real-Time Election Voting Analysis",
		Category:    "ML & Data Analytics",
		Description: "Election trend prediction with regression and ARIMA plus Siamese-network voter verification over a Kafka/Spark pipeline.",
		Tech:        []string{"ARIMA", "Siamese Networks", "Kafka", "Hadoop", "Apache Spark", "Streamlit", "Python", "Real-time Analytics"},
		GithubLink:  "https://github.com/RAAHUL-tech/Vote_Prediction",
		Featured:    true,
	},
	{
		Title:       "Fact-Checking News Aggregator",
		Category:    "AI & Multi-Agent Systems",
		Description: "Multi-agent system that processes 50,000+ articles daily to extract and verify factual claims, publishing to a static site.",
		Tech:        []string{"LLMs", "Multi-Agent Systems", "A2A Protocol", "MCP", "Jekyll", "Python", "Automation", "AI Agents"},
		GithubLink:  "https://github.com/RAAHUL-tech/Fact_Checking_News_Aggregator",
		Featured:    true,
	},
	{
		Title:       "Neural Style Transfer with Transformers",
		Category:    "Deep Learning & Computer Vision",
		Description: "Transformer-based neural style transfer experiments.",
		Tech:        []string{"Python", "PyTorch", "OpenCV", "Torchvision", "Transformers", "Reinforcement Learning", "Computer Vision", "Neural Style Transfer"},
		GithubLink:  "https://github.com/RAAHUL-tech/Neural-Style-Transfer",
	},
	{
		Title:       "DATON (Detection And Tracking Of Vehicle Number Plates)",
		Category:    "Computer Vision & Vehicle Tracking",
		Description: "Real-time number plate detection and tracking with YOLOv8, WPOD-net and EasyOCR.",
		Tech:        []string{"YOLOv8", "WPOD-net", "EasyOCR", "Python", "OpenCV", "Real-time Tracking", "Computer Vision"},
		GithubLink:  "https://github.com/RAAHUL-tech/DATON",
	},
	{
		Title:       "Face Emotion Recognition",
		Category:    "Deep Learning & Computer Vision",
		Description: "CNN-based facial emotion classification across PyTorch, TensorFlow and MXNet.",
		Tech:        []string{"PyTorch", "TensorFlow", "MXNet", "CNNs", "Computer Vision", "Deep Learning", "Python"},
		GithubLink:  "https://github.com/RAAHUL-tech/Face-Emotion-Recognition",
	},
}

var SkillCategories = []SkillCategory{
	{
		Title: "Programming Languages",
		Skills: []Skill{
			{Name: "Python", Color: "#3776ab"},
			{Name: "Java", Color: "#f89820"},
			{Name: "C++", Color: "#00599c"},
			{Name: "JavaScript", Color: "#f7df1e"},
			{Name: "PHP", Color: "#777bb4"},
			{Name: "MySQL", Color: "#4479a1"},
		},
	},
	{
		Title: "Frameworks & Libraries",
		Skills: []Skill{
			{Name: "PyTorch", Color: "#ee4c2c"},
			{Name: "TensorFlow", Color: "#ff6f00"},
			{Name: "Keras", Color: "#d00000"},
			{Name: "Spark", Color: "#e25a1c"},
			{Name: "Hadoop", Color: "#66ccff"},
			{Name: "React", Color: "#61dafb"},
			{Name: "Flask", Color: "#d00000"},
			{Name: "LangChain", Color: "#1c3c3c"},
			{Name: "LangGraph", Color: "#1c3c3c"},
			{Name: "HuggingFace", Color: "#ff9d00"},
		},
	},
	{
		Title: "DevOps & MLOps Tools",
		Skills: []Skill{
			{Name: "Git", Color: "#f05032"},
			{Name: "AWS", Color: "#ff9900"},
			{Name: "GCP", Color: "#4285f4"},
			{Name: "Docker", Color: "#2496ed"},
			{Name: "Kubernetes", Color: "#326ce5"},
			{Name: "Terraform", Color: "#623ce4"},
			{Name: "Kafka", Color: "#0194e2"},
			{Name: "MLflow", Color: "#0194e2"},
			{Name: "DVC", Color: "#13adc7"},
			{Name: "Hydra", Color: "#ff6b6b"},
			{Name: "W&B", Color: "#ffbe00"},
			{Name: "Evidently AI", Color: "#00d4aa"},
		},
	},
}

var Blogs = []Blog{
	{
		Title:    "Post-Training Quantization vs Quantization-Aware Training: A Hands-On Comparison with a Small LLaMA Model",
		Excerpt:  "Performance trade-offs between PTQ and QAT on a TinyLLaMA model, comparing accuracy, throughput, and model size.",
		Date:     "2025-08-24",
		ReadTime: "13 min read",
		Tags:     []string{"Deep Learning", "Model Compression", "Quantization", "LLaMA", "PyTorch"},
	},
	{
		Title:    "Building an Autonomous Fact-Checking News Aggregator with AI Agents, A2A & MCP",
		Excerpt:  "Design of an AI-powered news aggregator that fact-checks articles through multi-agent collaboration.",
		Date:     "2025-07-21",
		ReadTime: "8 min read",
		Tags:     []string{"AI Agents", "Fact-Checking", "News Aggregator", "Multi-Agent Systems", "A2A", "MCP"},
	},
	{
		Title:    "Machine Learning System Design I: Developing a Real-Time Credit Card Fraud Detection Pipeline",
		Excerpt:  "Building a real-time fraud detection system on AWS with MLOps frameworks, serverless deployment and monitoring.",
		Date:     "2025-06-28",
		ReadTime: "15 min read",
		Tags:     []string{"MLOps", "AWS", "Machine Learning", "Fraud Detection", "Real-Time Analytics"},
	},
	{
		Title:    "Smart by Design: Demystifying the Architecture of AI Agents - Blog-4",
		Excerpt:  "BDI models, learning-based adaptable systems, and multi-agent systems for distributed coordination.",
		Date:     "2025-06-19",
		ReadTime: "7 min read",
		Tags:     []string{"AI Agents", "BDI", "Multi-Agent Systems", "Learning-Based AI", "Intelligent Systems"},
	},
	{
		Title:    "Smart by Design: Demystifying the Architecture of AI Agents - Blog-3",
		Excerpt:  "Reactive, deliberative, and hybrid agent architectures and how they process perception and action.",
		Date:     "2025-06-10",
		ReadTime: "7 min read",
		Tags:     []string{"AI Agents", "Architecture", "Intelligent Systems", "Reactive", "Deliberative", "Hybrid"},
	},
	{
		Title:    "Smart by Design: Demystifying the Architecture of AI Agents - Blog-2",
		Excerpt:  "The five basic kinds of AI agents, from reflex agents to self-improving learning agents.",
		Date:     "2025-06-04",
		ReadTime: "7 min read",
		Tags:     []string{"AI Agents", "Agent Types", "Machine Learning"},
	},
	{
		Title:    "Smart by Design: Demystifying the Architecture of AI Agents - Blog 1",
		Excerpt:  "Core definitions and components of AI agents with an overview of five key agent types.",
		Date:     "2025-05-30",
		ReadTime: "7 min read",
		Tags:     []string{"AI Agents", "Artificial Intelligence", "Machine Learning", "Autonomous Systems"},
	},
}

// BlogIndexURL is where the full posts live.
const BlogIndexURL = "https://medium.com/@rahulkrish28"

var ContactLinks = []ContactLink{
	{Label: "Email", Value: "rahulkrish28@gmail.com", URL: "mailto:rahulkrish28@gmail.com"},
	{Label: "LinkedIn", Value: "in/raahulkrishna", URL: "https://www.linkedin.com/in/raahulkrishna/"},
	{Label: "GitHub", Value: "RAAHUL-tech", URL: "https://github.com/RAAHUL-tech"},
	{Label: "Medium", Value: "@rahulkrish28", URL: BlogIndexURL},
}
