package db

import "gorm.io/gorm"

// SeedIfEmpty populates example content when the projects table is empty.
// Runs once at startup so request handlers never touch initialization.
func SeedIfEmpty(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&Project{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return seed(gdb)
}

func seed(gdb *gorm.DB) error {
	projects := []Project{
		{
			Category:         CategoryMedicine,
			Title:            "Automated Retinal Disease Detection",
			Slug:             "automated-retinal-disease-detection",
			PreviewSummary:   "AI-powered system for early detection of diabetic retinopathy using deep learning",
			PreviewImagePath: "graphics/test_image.png",
			PageIntroText:    "This project leverages convolutional neural networks to analyze retinal images and identify early signs of diabetic retinopathy. The system achieves 94% accuracy in detecting microaneurysms and hemorrhages, enabling earlier intervention and treatment.",
		},
		{
			Category:         CategoryMedicine,
			Title:            "Surgical Tool Recognition System",
			Slug:             "surgical-tool-recognition-system",
			PreviewSummary:   "Computer vision system for real-time identification of surgical instruments during procedures",
			PreviewImagePath: "graphics/test_image.png",
			PageIntroText:    "A real-time computer vision system that identifies and tracks surgical instruments during operations. This helps reduce errors and improve surgical workflow efficiency.",
		},
		{
			Category:         CategoryMedicine,
			Title:            "Patient Risk Prediction Model",
			Slug:             "patient-risk-prediction-model",
			PreviewSummary:   "Machine learning model predicting patient outcomes using clinical data",
			PreviewImagePath: "graphics/test_image.png",
			PageIntroText:    "A survival analysis model that predicts patient outcomes based on clinical variables. The model uses gradient boosting and has been validated on a dataset of over 10,000 patients.",
		},
		{
			Category:         CategoryCreative,
			Title:            "Interactive Data Visualization Platform",
			Slug:             "interactive-data-visualization-platform",
			PreviewSummary:   "Web-based tool for creating beautiful, interactive data visualizations",
			PreviewImagePath: "graphics/test_image.png",
			PageIntroText:    "A full-stack web application that allows users to upload datasets and create interactive visualizations. Built with modern web technologies and featuring a responsive design.",
		},
		{
			Category:         CategoryCreative,
			Title:            "Personal Portfolio Website",
			Slug:             "personal-portfolio-website",
			PreviewSummary:   "Custom-built portfolio site showcasing projects and experiences",
			PreviewImagePath: "graphics/test_image.png",
			PageIntroText:    "A responsive portfolio website built from scratch. Features custom animations, dark theme, and a content management system.",
		},
		{
			Category:         CategoryCreative,
			Title:            "Music Recommendation Engine",
			Slug:             "music-recommendation-engine",
			PreviewSummary:   "Algorithm that suggests music based on listening patterns and preferences",
			PreviewImagePath: "graphics/test_image.png",
			PageIntroText:    "A collaborative filtering system that analyzes user listening patterns to recommend new music. Uses matrix factorization techniques to find similar users and songs.",
		},
	}

	for i := range projects {
		if err := gdb.Create(&projects[i]).Error; err != nil {
			return err
		}
		image := ProjectImage{
			ProjectID:    projects[i].ID,
			ImagePath:    "graphics/test_image.png",
			DisplayOrder: 0,
		}
		if err := gdb.Create(&image).Error; err != nil {
			return err
		}
	}

	publications := []Publication{
		{
			Title:           "Deep Learning for Medical Image Analysis: A Comprehensive Review",
			Journal:         "Journal of Medical AI",
			PublicationDate: "2024-01-15",
			Authors:         "Sundeep Chakladar, Jane Smith, John Doe",
			URL:             "https://example.com/publication1",
		},
		{
			Title:           "Automated Detection of Pathological Features in Retinal Images",
			Journal:         "IEEE Transactions on Biomedical Engineering",
			PublicationDate: "2023-11-20",
			Authors:         "Sundeep Chakladar, Alice Johnson",
			URL:             "https://example.com/publication2",
		},
		{
			Title:           "Machine Learning Approaches to Patient Outcome Prediction",
			Journal:         "Nature Medicine",
			PublicationDate: "2023-08-10",
			Authors:         "Sundeep Chakladar, Bob Williams, Carol Brown",
			URL:             "https://example.com/publication3",
		},
		{
			Title:           "Computer Vision in Surgical Applications: Current State and Future Directions",
			Journal:         "Surgical Innovation",
			PublicationDate: "2023-05-22",
			Authors:         "Sundeep Chakladar, David Lee",
			URL:             "https://example.com/publication4",
		},
		{
			Title:           "Unsupervised Clustering of Clinical Data for Patient Stratification",
			Journal:         "Journal of Clinical Informatics",
			PublicationDate: "2023-03-14",
			Authors:         "Sundeep Chakladar, Emma Davis, Frank Miller",
			URL:             "https://example.com/publication5",
		},
		{
			Title:           "Risk Prediction Models in Emergency Medicine: A Comparative Study",
			Journal:         "Emergency Medicine Journal",
			PublicationDate: "2022-12-05",
			Authors:         "Sundeep Chakladar, Grace Wilson",
			URL:             "https://example.com/publication6",
		},
	}
	if err := gdb.Create(&publications).Error; err != nil {
		return err
	}

	experiences := []Experience{
		{
			Title:       "Medical Research Intern",
			Description: "Conducted research on machine learning applications in medical imaging. Developed and validated deep learning models for disease detection, achieving state-of-the-art results. Collaborated with clinical teams to ensure model interpretability and clinical relevance.",
		},
		{
			Title:       "Full-Stack Developer",
			Description: "Built and deployed web applications for healthcare organizations. Designed user interfaces, implemented backend APIs, and managed database systems. Worked with modern frameworks and cloud deployment platforms.",
		},
		{
			Title:       "Data Science Consultant",
			Description: "Provided data analysis and machine learning consulting services to medical institutions. Developed predictive models, performed statistical analysis, and created data visualizations to support clinical decision-making.",
		},
		{
			Title:       "Teaching Assistant - Medical Informatics",
			Description: "Assisted in teaching medical informatics courses. Helped students understand machine learning concepts, supervised lab sessions, and graded assignments. Developed educational materials and tutorials.",
		},
		{
			Title:       "Open Source Contributor",
			Description: "Contributed to open-source medical imaging libraries. Fixed bugs, added features, and improved documentation. Collaborated with international developers on projects used by thousands of researchers worldwide.",
		},
		{
			Title:       "Conference Presenter",
			Description: "Presented research findings at multiple international conferences. Delivered talks on machine learning in healthcare, participated in panel discussions, and networked with researchers and industry professionals.",
		},
	}
	return gdb.Create(&experiences).Error
}
