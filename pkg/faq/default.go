package faq

// DefaultEntries returns the built-in question set.
func DefaultEntries() []Entry {
	return []Entry{
		{
			ID:       1,
			Question: "What is React and why should I use it?",
			Answer:   "React is a JavaScript library for building user interfaces. It allows you to create reusable UI components and efficiently update the DOM when your data changes. React's component-based architecture makes it easier to build and maintain complex applications.",
			Icon:     IconZap,
			Category: "Basics",
			Tags:     []string{"React", "Fundamentals"},
		},
		{
			ID:       2,
			Question: "How do I handle state in React?",
			Answer:   "React provides several ways to handle state: useState hook for functional components, useReducer for complex state logic, and Context API for global state. For larger applications, you might consider state management libraries like Redux or Zustand. The key is to keep state as close as possible to where it's used.",
			Icon:     IconStar,
			Category: "State Management",
			Tags:     []string{"Hooks", "State", "Redux"},
		},
		{
			ID:       3,
			Question: "What are React Hooks?",
			Answer:   "Hooks are functions that let you use state and other React features in functional components. Common hooks include useState (state), useEffect (side effects), useContext (context), useReducer (complex state), and useMemo/useCallback (performance optimization). You can also create custom hooks to reuse stateful logic.",
			Icon:     IconHelpCircle,
			Category: "Advanced",
			Tags:     []string{"Hooks", "Functions"},
		},
		{
			ID:       4,
			Question: "How does React handle performance optimization?",
			Answer:   "React uses several techniques: Virtual DOM for efficient updates, React.memo for component memoization, useMemo/useCallback for expensive calculations, code splitting with React.lazy, and Suspense for data fetching. Proper key usage in lists and avoiding unnecessary re-renders are also crucial for performance.",
			Icon:     IconSparkles,
			Category: "Performance",
			Tags:     []string{"Optimization", "Memoization"},
		},
		{
			ID:       5,
			Question: "What is the difference between props and state?",
			Answer:   "Props (properties) are data passed from parent to child components - they are immutable within the child. State is data managed within a component that can change over time, triggering re-renders. Props allow components to be reusable, while state makes components interactive.",
			Icon:     IconMessageSquare,
			Category: "Basics",
			Tags:     []string{"Props", "State", "Fundamentals"},
		},
		{
			ID:       6,
			Question: "How do I handle forms in React?",
			Answer:   "React offers two approaches: controlled components (form data handled by React state) and uncontrolled components (form data handled by the DOM). The recommended approach is controlled components using useState hooks. Libraries like React Hook Form or Formik can simplify complex form handling with validation.",
			Icon:     IconBookOpen,
			Category: "Forms",
			Tags:     []string{"Forms", "Validation", "Input"},
		},
		{
			ID:       7,
			Question: "What is React Router and how do I use it?",
			Answer:   "React Router is the standard routing library for React. It enables navigation between different components while keeping the UI in sync with the URL. Key components include BrowserRouter, Routes, Route, and Link. Version 6 introduced significant improvements with nested routes and relative links.",
			Icon:     IconGlobe,
			Category: "Routing",
			Tags:     []string{"Router", "Navigation", "SPA"},
		},
		{
			ID:       8,
			Question: "How do I test React applications?",
			Answer:   "React applications can be tested using Jest (test runner) and React Testing Library (component testing). Key testing strategies include unit tests for individual functions, component tests for UI components, integration tests for component interactions, and end-to-end tests with tools like Cypress or Playwright.",
			Icon:     IconUsers,
			Category: "Testing",
			Tags:     []string{"Jest", "Testing", "Quality"},
		},
	}
}

// Default returns a catalog over DefaultEntries.
func Default() *Catalog {
	c, err := NewCatalog(DefaultEntries())
	if err != nil {
		// The built-in set is fixed; a failure here is a programming error.
		panic(err)
	}
	return c
}
