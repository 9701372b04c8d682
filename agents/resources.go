package agents

import (
	"strings"

	"careeragent/models"
)

// RoleRequirements is the built-in requirements table used when the model
// is unavailable and for roles the catalog already knows.
type RoleRequirements struct {
	Required   []string `json:"required"`
	Preferred  []string `json:"preferred"`
	SoftSkills []string `json:"soft_skills"`
}

var roleRequirements = map[string]RoleRequirements{
	"Full Stack Developer": {
		Required:   []string{"JavaScript", "React", "Node.js", "SQL", "Git", "REST APIs", "HTML/CSS"},
		Preferred:  []string{"TypeScript", "Docker", "AWS", "MongoDB", "GraphQL", "CI/CD"},
		SoftSkills: []string{"Problem Solving", "Communication", "Team Collaboration"},
	},
	"Frontend Developer": {
		Required:   []string{"JavaScript", "React", "HTML/CSS", "Git", "Responsive Design"},
		Preferred:  []string{"TypeScript", "Vue.js", "Testing", "Webpack", "Figma"},
		SoftSkills: []string{"Attention to Detail", "Communication", "Creativity"},
	},
	"Backend Developer": {
		Required:   []string{"Python", "Node.js", "SQL", "REST APIs", "Git"},
		Preferred:  []string{"Docker", "AWS", "Redis", "Microservices", "GraphQL"},
		SoftSkills: []string{"Problem Solving", "System Thinking", "Documentation"},
	},
	"Data Scientist": {
		Required:   []string{"Python", "SQL", "Statistics", "Machine Learning", "Pandas", "NumPy"},
		Preferred:  []string{"TensorFlow", "PyTorch", "Spark", "Tableau", "Deep Learning"},
		SoftSkills: []string{"Analytical Thinking", "Communication", "Curiosity"},
	},
	"Software Engineer": {
		Required:   []string{"Programming", "Data Structures", "Algorithms", "Git", "Problem Solving"},
		Preferred:  []string{"System Design", "Cloud", "CI/CD", "Testing", "Agile"},
		SoftSkills: []string{"Communication", "Teamwork", "Critical Thinking"},
	},
}

// LookupRoleRequirements matches a role name against the catalog, case
// insensitively and in both containment directions. Returns the canonical
// role name and its requirements.
func LookupRoleRequirements(role string) (string, RoleRequirements, bool) {
	roleLower := strings.ToLower(role)
	for key, reqs := range roleRequirements {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, roleLower) || strings.Contains(roleLower, keyLower) {
			return key, reqs, true
		}
	}
	return "", RoleRequirements{}, false
}

func defaultRoleRequirements() RoleRequirements {
	return roleRequirements["Software Engineer"]
}

// Curated learning resources with known-good URLs. The model's suggested
// resources are always replaced with these when the skill is known, since
// models keep inventing video IDs.
var curatedResources = map[string][]models.LearningResource{
	"Node.js": {
		{Title: "Node.js Full Course for Beginners", Type: "video", URL: "https://www.youtube.com/watch?v=f2EqECiTBL8", Platform: "YouTube", Duration: "3 hours"},
		{Title: "Node.js Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=fBNz5xF-Kx4", Platform: "YouTube", Duration: "1.5 hours"},
		{Title: "Node.js Official Documentation", Type: "documentation", URL: "https://nodejs.org/en/docs/", Platform: "Official Docs"},
	},
	"TypeScript": {
		{Title: "TypeScript Full Course - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=gp5H0Vw39yw", Platform: "YouTube", Duration: "1.5 hours"},
		{Title: "TypeScript Tutorial - The Net Ninja", Type: "video", URL: "https://www.youtube.com/watch?v=2pZmKW9-I_k", Platform: "YouTube", Duration: "2 hours"},
		{Title: "TypeScript Handbook", Type: "documentation", URL: "https://www.typescriptlang.org/docs/handbook/", Platform: "Official Docs"},
	},
	"React": {
		{Title: "React Full Course 2024 - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=CgkZ7MvWUAA", Platform: "YouTube", Duration: "12 hours"},
		{Title: "React JS Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=w7ejDZ8SWv8", Platform: "YouTube", Duration: "1.5 hours"},
		{Title: "React Official Documentation", Type: "documentation", URL: "https://react.dev/learn", Platform: "Official Docs"},
	},
	"Python": {
		{Title: "Python Full Course - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=rfscVS0vtbw", Platform: "YouTube", Duration: "4.5 hours"},
		{Title: "Python Tutorial - Programming with Mosh", Type: "video", URL: "https://www.youtube.com/watch?v=_uQrJ0TkZlc", Platform: "YouTube", Duration: "6 hours"},
		{Title: "Python Official Documentation", Type: "documentation", URL: "https://docs.python.org/3/tutorial/", Platform: "Official Docs"},
	},
	"JavaScript": {
		{Title: "JavaScript Full Course - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=PkZNo7MFNFg", Platform: "YouTube", Duration: "3.5 hours"},
		{Title: "JavaScript Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=hdI2bqOjy3c", Platform: "YouTube", Duration: "1.5 hours"},
		{Title: "MDN JavaScript Guide", Type: "documentation", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide", Platform: "MDN"},
	},
	"Docker": {
		{Title: "Docker Tutorial for Beginners - TechWorld", Type: "video", URL: "https://www.youtube.com/watch?v=3c-iBn73dDE", Platform: "YouTube", Duration: "3 hours"},
		{Title: "Docker Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=pg19Z8LL06w", Platform: "YouTube", Duration: "1 hour"},
		{Title: "Docker Official Documentation", Type: "documentation", URL: "https://docs.docker.com/get-started/", Platform: "Official Docs"},
	},
	"AWS": {
		{Title: "AWS Certified Cloud Practitioner Training", Type: "video", URL: "https://www.youtube.com/watch?v=SOTamWNgDKc", Platform: "YouTube", Duration: "4 hours"},
		{Title: "AWS Tutorial For Beginners - Simplilearn", Type: "video", URL: "https://www.youtube.com/watch?v=k1RI5locZE4", Platform: "YouTube", Duration: "4 hours"},
		{Title: "AWS Documentation", Type: "documentation", URL: "https://docs.aws.amazon.com/", Platform: "Official Docs"},
	},
	"SQL": {
		{Title: "SQL Tutorial - Full Database Course", Type: "video", URL: "https://www.youtube.com/watch?v=HXV3zeQKqGY", Platform: "YouTube", Duration: "4 hours"},
		{Title: "MySQL Tutorial for Beginners", Type: "video", URL: "https://www.youtube.com/watch?v=7S_tz1z_5bA", Platform: "YouTube", Duration: "3 hours"},
		{Title: "W3Schools SQL Tutorial", Type: "documentation", URL: "https://www.w3schools.com/sql/", Platform: "W3Schools"},
	},
	"Git": {
		{Title: "Git and GitHub for Beginners - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=RGOj5yH7evk", Platform: "YouTube", Duration: "1 hour"},
		{Title: "Git Tutorial for Beginners - Programming with Mosh", Type: "video", URL: "https://www.youtube.com/watch?v=8JJ101D3knE", Platform: "YouTube", Duration: "1 hour"},
		{Title: "Git Official Documentation", Type: "documentation", URL: "https://git-scm.com/doc", Platform: "Official Docs"},
	},
	"System Design": {
		{Title: "System Design Interview - ByteByteGo", Type: "video", URL: "https://www.youtube.com/watch?v=UzLMhqg3_Wc", Platform: "YouTube", Duration: "1 hour"},
		{Title: "System Design for Beginners - Gaurav Sen", Type: "video", URL: "https://www.youtube.com/watch?v=xpDnVSmNFX0", Platform: "YouTube", Duration: "30 min"},
		{Title: "System Design Primer", Type: "documentation", URL: "https://github.com/donnemartin/system-design-primer", Platform: "GitHub"},
	},
	"MongoDB": {
		{Title: "MongoDB Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=-56x56UppqQ", Platform: "YouTube", Duration: "1.5 hours"},
		{Title: "MongoDB Complete Course - Net Ninja", Type: "video", URL: "https://www.youtube.com/watch?v=ExcRbA7fy_A", Platform: "YouTube", Duration: "3 hours"},
		{Title: "MongoDB Official Documentation", Type: "documentation", URL: "https://www.mongodb.com/docs/", Platform: "Official Docs"},
	},
	"REST APIs": {
		{Title: "REST API Tutorial - Programming with Mosh", Type: "video", URL: "https://www.youtube.com/watch?v=SLwpqD8n3d0", Platform: "YouTube", Duration: "1 hour"},
		{Title: "Build A REST API With Node.js - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=pKd0Rpw7O48", Platform: "YouTube", Duration: "1 hour"},
		{Title: "RESTful API Design Guide", Type: "documentation", URL: "https://restfulapi.net/", Platform: "RestfulAPI.net"},
	},
	"GraphQL": {
		{Title: "GraphQL Full Course - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=ed8SzALpx1Q", Platform: "YouTube", Duration: "4 hours"},
		{Title: "GraphQL Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=BcLNfwF04Kw", Platform: "YouTube", Duration: "1 hour"},
		{Title: "GraphQL Official Documentation", Type: "documentation", URL: "https://graphql.org/learn/", Platform: "Official Docs"},
	},
	"CI/CD": {
		{Title: "GitHub Actions Tutorial - TechWorld", Type: "video", URL: "https://www.youtube.com/watch?v=R8_veQiYBjI", Platform: "YouTube", Duration: "1 hour"},
		{Title: "Jenkins Tutorial For Beginners", Type: "video", URL: "https://www.youtube.com/watch?v=FX322RVNGj4", Platform: "YouTube", Duration: "2 hours"},
		{Title: "GitHub Actions Documentation", Type: "documentation", URL: "https://docs.github.com/en/actions", Platform: "GitHub"},
	},
	"Kubernetes": {
		{Title: "Kubernetes Tutorial for Beginners - TechWorld", Type: "video", URL: "https://www.youtube.com/watch?v=X48VuDVv0do", Platform: "YouTube", Duration: "4 hours"},
		{Title: "Kubernetes Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=s_o8dwzRlu4", Platform: "YouTube", Duration: "1 hour"},
		{Title: "Kubernetes Official Documentation", Type: "documentation", URL: "https://kubernetes.io/docs/home/", Platform: "Official Docs"},
	},
	"Vue.js": {
		{Title: "Vue.js Course for Beginners - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=FXpIoQ_rT_c", Platform: "YouTube", Duration: "3.5 hours"},
		{Title: "Vue 3 Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=qZXt1Aom3Cs", Platform: "YouTube", Duration: "1.5 hours"},
		{Title: "Vue.js Official Documentation", Type: "documentation", URL: "https://vuejs.org/guide/introduction.html", Platform: "Official Docs"},
	},
	"Machine Learning": {
		{Title: "Machine Learning Full Course - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=NWONeJKn6kc", Platform: "YouTube", Duration: "10 hours"},
		{Title: "Machine Learning for Beginners - Simplilearn", Type: "video", URL: "https://www.youtube.com/watch?v=ukzFI9rgwfU", Platform: "YouTube", Duration: "4 hours"},
		{Title: "Google ML Crash Course", Type: "course", URL: "https://developers.google.com/machine-learning/crash-course", Platform: "Google"},
	},
	"Data Structures": {
		{Title: "Data Structures Full Course - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=RBSGKlAvoiM", Platform: "YouTube", Duration: "8 hours"},
		{Title: "Data Structures - CS Dojo", Type: "video", URL: "https://www.youtube.com/watch?v=bum_19loj9A", Platform: "YouTube", Duration: "20 min"},
		{Title: "GeeksforGeeks DSA", Type: "documentation", URL: "https://www.geeksforgeeks.org/data-structures/", Platform: "GeeksforGeeks"},
	},
	"Algorithms": {
		{Title: "Algorithms Course - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=8hly31xKli0", Platform: "YouTube", Duration: "5 hours"},
		{Title: "Algorithms Explained - Reducible", Type: "video", URL: "https://www.youtube.com/watch?v=WbzNRTTrX0g", Platform: "YouTube", Duration: "20 min"},
		{Title: "Algorithms - Khan Academy", Type: "course", URL: "https://www.khanacademy.org/computing/computer-science/algorithms", Platform: "Khan Academy"},
	},
	"HTML/CSS": {
		{Title: "HTML & CSS Full Course - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=mU6anWqZJcc", Platform: "YouTube", Duration: "11 hours"},
		{Title: "CSS Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=yfoY53QXEnI", Platform: "YouTube", Duration: "1.5 hours"},
		{Title: "MDN HTML/CSS Guide", Type: "documentation", URL: "https://developer.mozilla.org/en-US/docs/Learn/HTML", Platform: "MDN"},
	},
	"Responsive Design": {
		{Title: "Responsive Web Design - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=srvUrASNj0s", Platform: "YouTube", Duration: "4 hours"},
		{Title: "Flexbox Crash Course - Traversy Media", Type: "video", URL: "https://www.youtube.com/watch?v=3YW65K6LcIA", Platform: "YouTube", Duration: "20 min"},
		{Title: "MDN Responsive Design", Type: "documentation", URL: "https://developer.mozilla.org/en-US/docs/Learn/CSS/CSS_layout/Responsive_Design", Platform: "MDN"},
	},
	"Testing": {
		{Title: "Software Testing Tutorial - Guru99", Type: "video", URL: "https://www.youtube.com/watch?v=sO8eGL6SFsA", Platform: "YouTube", Duration: "3 hours"},
		{Title: "JavaScript Testing - Fireship", Type: "video", URL: "https://www.youtube.com/watch?v=u6QfIXgjwGQ", Platform: "YouTube", Duration: "12 min"},
		{Title: "Testing Library Docs", Type: "documentation", URL: "https://testing-library.com/docs/", Platform: "Official Docs"},
	},
	"Redis": {
		{Title: "Redis Crash Course - TechWorld", Type: "video", URL: "https://www.youtube.com/watch?v=XCsS_NVAa1g", Platform: "YouTube", Duration: "1 hour"},
		{Title: "Redis Tutorial - freeCodeCamp", Type: "video", URL: "https://www.youtube.com/watch?v=jgpVdJB2sKQ", Platform: "YouTube", Duration: "1 hour"},
		{Title: "Redis Official Documentation", Type: "documentation", URL: "https://redis.io/docs/", Platform: "Official Docs"},
	},
	"Problem Solving": {
		{Title: "Problem Solving for Developers - Fireship", Type: "video", URL: "https://www.youtube.com/watch?v=UFc-RPbq8kg", Platform: "YouTube", Duration: "10 min"},
		{Title: "How to Think Like a Programmer", Type: "video", URL: "https://www.youtube.com/watch?v=azcrPFhaY9k", Platform: "YouTube", Duration: "15 min"},
		{Title: "LeetCode Practice", Type: "course", URL: "https://leetcode.com/problemset/all/", Platform: "LeetCode"},
	},
	"Communication": {
		{Title: "Communication Skills for Engineers", Type: "video", URL: "https://www.youtube.com/watch?v=HAnw168huqA", Platform: "YouTube", Duration: "15 min"},
		{Title: "Technical Communication Skills", Type: "video", URL: "https://www.youtube.com/watch?v=Z6ygdopLpO4", Platform: "YouTube", Duration: "10 min"},
		{Title: "Communication Skills Guide", Type: "documentation", URL: "https://www.mindtools.com/page8.html", Platform: "MindTools"},
	},
}

// CuratedResourcesFor returns known-good resources for a skill: exact name
// match first, then case-insensitive containment either way.
func CuratedResourcesFor(skillName string) []models.LearningResource {
	if resources, ok := curatedResources[skillName]; ok {
		return resources
	}

	skillLower := strings.ToLower(skillName)
	for key, resources := range curatedResources {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, skillLower) || strings.Contains(skillLower, keyLower) {
			return resources
		}
	}
	return nil
}

// FallbackResourcesFor never returns an empty list: curated resources when
// the skill is known, generic learning platforms otherwise.
func FallbackResourcesFor(skillName string) []models.LearningResource {
	if curated := CuratedResourcesFor(skillName); curated != nil {
		return curated
	}
	return []models.LearningResource{
		{Title: "Learn " + skillName + " - freeCodeCamp", Type: "course", URL: "https://www.freecodecamp.org/learn/", Platform: "freeCodeCamp"},
		{Title: skillName + " Tutorial - Coursera", Type: "course", URL: "https://www.coursera.org/", Platform: "Coursera"},
		{Title: "MDN Web Docs", Type: "documentation", URL: "https://developer.mozilla.org/en-US/", Platform: "MDN"},
	}
}
