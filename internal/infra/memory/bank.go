package memory

import "trivia-quiz-service/internal/domain"

// DefaultCategories is the selectable topic catalogue.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: "principles and practices of large-scale programming", Topic: "Principles and Practices of Large-Scale Programming", Icon: "css3-alt"},
		{ID: "information security management", Topic: "Information Security Management", Icon: "shield-alt"},
		{ID: "mobile computing", Topic: "Mobile Computing", Icon: "mobile-alt"},
		{ID: "internet of things (iot)", Topic: "Internet of Things (IoT)", Icon: "globe"},
		{ID: "real-time and control systems", Topic: "Real-time and Control Systems", Icon: "clock"},
		{ID: "responsible computing", Topic: "Responsible Computing", Icon: "hand-holding-heart"},
		{ID: "software architecture", Topic: "Software Architecture", Icon: "layer-group"},
	}
}

// DefaultQuestionBank is the built-in bank: four questions per category.
func DefaultQuestionBank() []domain.Question {
	return []domain.Question{
		{
			ID:       1,
			Category: "Principles and Practices of Large-Scale Programming",
			Text:     "What are the key characteristics of large-scale software development?",
			Options:  []string{"Small team collaboration", "Scalability and maintainability", "Short development cycles", "Minimal documentation"},
			Answer:   "Scalability and maintainability",
		},
		{
			ID:       2,
			Category: "Principles and Practices of Large-Scale Programming",
			Text:     "What is the role of version control systems in large-scale programming?",
			Options:  []string{"Tracking code changes", "Improving execution speed", "Reducing memory usage", "Optimizing CPU performance"},
			Answer:   "Tracking code changes",
		},
		{
			ID:       3,
			Category: "Principles and Practices of Large-Scale Programming",
			Text:     "What is a common challenge in large-scale software development?",
			Options:  []string{"Managing large codebases", "Building small applications", "Easy team coordination", "No requirement for testing"},
			Answer:   "Managing large codebases",
		},
		{
			ID:       4,
			Category: "Principles and Practices of Large-Scale Programming",
			Text:     "Which of the following is essential for managing large-scale projects?",
			Options:  []string{"Strong project management and documentation", "Single developer managing all code", "Minimal testing", "One-stage development"},
			Answer:   "Strong project management and documentation",
		},
		{
			ID:       5,
			Category: "Mobile Computing",
			Text:     "What are the fundamental components of a mobile computing system?",
			Options:  []string{"User interface, hardware, and software", "Database only", "Battery and storage only", "Cloud servers"},
			Answer:   "User interface, hardware, and software",
		},
		{
			ID:       6,
			Category: "Mobile Computing",
			Text:     "How does 5G improve mobile computing experiences?",
			Options:  []string{"Increases latency", "Reduces bandwidth", "Improves speed and reliability", "Slows down data transfer"},
			Answer:   "Improves speed and reliability",
		},
		{
			ID:       7,
			Category: "Mobile Computing",
			Text:     "Which of the following is a key advantage of mobile cloud computing?",
			Options:  []string{"Access to resources from anywhere", "Limited access to resources", "Faster mobile hardware", "No need for internet connection"},
			Answer:   "Access to resources from anywhere",
		},
		{
			ID:       8,
			Category: "Mobile Computing",
			Text:     "Which technology is essential for the communication between mobile devices in IoT?",
			Options:  []string{"Wi-Fi", "Bluetooth", "5G", "All of the above"},
			Answer:   "All of the above",
		},
		{
			ID:       9,
			Category: "Information Security Management",
			Text:     "What are the core principles of information security?",
			Options:  []string{"Confidentiality, Integrity, Availability", "Speed, Performance, Reliability", "Optimization, Accuracy, Efficiency", "Memory Management, Storage, Processing"},
			Answer:   "Confidentiality, Integrity, Availability",
		},
		{
			ID:       10,
			Category: "Information Security Management",
			Text:     "What is the main goal of risk management in information security?",
			Options:  []string{"Mitigate potential security threats", "Increase complexity of systems", "Develop new software tools", "Reduce hardware cost"},
			Answer:   "Mitigate potential security threats",
		},
		{
			ID:       11,
			Category: "Information Security Management",
			Text:     "What is encryption used for in information security?",
			Options:  []string{"Securing data during transmission", "Speeding up network connections", "Improving storage capacity", "Reducing costs in hardware"},
			Answer:   "Securing data during transmission",
		},
		{
			ID:       12,
			Category: "Information Security Management",
			Text:     "Which of the following is an example of a security vulnerability?",
			Options:  []string{"Software bugs that allow unauthorized access", "Frequent software updates", "Strong password policies", "Automated security audits"},
			Answer:   "Software bugs that allow unauthorized access",
		},
		{
			ID:       13,
			Category: "Internet of Things (IoT)",
			Text:     "What is the Internet of Things (IoT)?",
			Options:  []string{"A global network of connected devices", "A programming language", "A database management system", "A mobile application framework"},
			Answer:   "A global network of connected devices",
		},
		{
			ID:       14,
			Category: "Internet of Things (IoT)",
			Text:     "What is a common communication protocol used in IoT?",
			Options:  []string{"MQTT", "HTTP", "FTP", "SMTP"},
			Answer:   "MQTT",
		},
		{
			ID:       15,
			Category: "Internet of Things (IoT)",
			Text:     "What is the primary challenge of implementing IoT in industries?",
			Options:  []string{"Interoperability of devices", "Too much storage space", "Too little data generation", "Easy user access"},
			Answer:   "Interoperability of devices",
		},
		{
			ID:       16,
			Category: "Internet of Things (IoT)",
			Text:     "Which of the following is an example of an IoT application?",
			Options:  []string{"Smart thermostats", "Self-driving cars", "Wearable fitness trackers", "All of the above"},
			Answer:   "All of the above",
		},
		{
			ID:       17,
			Category: "Real-time and Control Systems",
			Text:     "What defines a real-time system?",
			Options:  []string{"A system that responds to inputs within a guaranteed time", "A system that operates only in batch mode", "A system with no time constraints", "A system that focuses only on storage management"},
			Answer:   "A system that responds to inputs within a guaranteed time",
		},
		{
			ID:       18,
			Category: "Real-time and Control Systems",
			Text:     "What is an example of a real-time operating system?",
			Options:  []string{"RTOS", "Windows 10", "macOS", "Linux"},
			Answer:   "RTOS",
		},
		{
			ID:       19,
			Category: "Real-time and Control Systems",
			Text:     "Which of the following is crucial in real-time systems?",
			Options:  []string{"Timeliness and predictability", "Maximum performance", "Unlimited resources", "No need for hardware interactions"},
			Answer:   "Timeliness and predictability",
		},
		{
			ID:       20,
			Category: "Real-time and Control Systems",
			Text:     "What is an example of a control system in engineering?",
			Options:  []string{"Temperature regulation system", "GPS system", "Voice recognition system", "All of the above"},
			Answer:   "Temperature regulation system",
		},
		{
			ID:       21,
			Category: "Responsible Computing",
			Text:     "What is responsible computing, and why is it important?",
			Options:  []string{"Ensuring ethical use of technology", "Maximizing profits", "Ignoring user privacy", "Reducing cybersecurity measures"},
			Answer:   "Ensuring ethical use of technology",
		},
		{
			ID:       22,
			Category: "Responsible Computing",
			Text:     "What is a key component of responsible computing?",
			Options:  []string{"User privacy and data protection", "Minimizing software usage", "Reducing energy consumption", "Ignoring social consequences"},
			Answer:   "User privacy and data protection",
		},
		{
			ID:       23,
			Category: "Responsible Computing",
			Text:     "Why is accessibility important in responsible computing?",
			Options:  []string{"To ensure inclusivity for all users", "To reduce system performance", "To limit technology access", "To make devices more expensive"},
			Answer:   "To ensure inclusivity for all users",
		},
		{
			ID:       24,
			Category: "Responsible Computing",
			Text:     "Which of the following is an example of responsible computing practice?",
			Options:  []string{"Ensuring transparency in algorithms", "Focusing only on business goals", "Ignoring ethical implications of technology", "None of the above"},
			Answer:   "Ensuring transparency in algorithms",
		},
		{
			ID:       25,
			Category: "Software Architecture",
			Text:     "What are the key principles of software architecture?",
			Options:  []string{"Scalability, Modularity, Performance", "Only frontend development", "Ignoring security principles", "Reducing maintainability"},
			Answer:   "Scalability, Modularity, Performance",
		},
		{
			ID:       26,
			Category: "Software Architecture",
			Text:     "What is the role of modularity in software architecture?",
			Options:  []string{"Breaking the system into manageable components", "Making the system slow", "Reducing maintainability", "Eliminating scalability"},
			Answer:   "Breaking the system into manageable components",
		},
		{
			ID:       27,
			Category: "Software Architecture",
			Text:     "What is the importance of scalability in software architecture?",
			Options:  []string{"Ability to handle increased load over time", "Less testing required", "Faster hardware requirements", "Ignoring security"},
			Answer:   "Ability to handle increased load over time",
		},
		{
			ID:       28,
			Category: "Software Architecture",
			Text:     "What is a key aspect of performance optimization in software architecture?",
			Options:  []string{"Efficient use of system resources", "Ignoring code quality", "Reducing security protocols", "Focusing only on frontend design"},
			Answer:   "Efficient use of system resources",
		},
	}
}
