package content

// Built in fallbacks served while a block has never been edited. They match
// the copy the marketing site shipped with, so a fresh install renders a
// complete page instead of empty sections.

func defaultAnnouncements() *AnnouncementsPayload {
	return &AnnouncementsPayload{
		Title: "ANNOUNCEMENTS",
		Announcements: []*AnnouncementView{
			{
				Title:       "Upcoming UDSM Research Week Exhibition on how ICT has changed Legal access in Tanzania, - 2025",
				Description: "Join us for an insightful exhibition showcasing the impact of ICT on legal access in Tanzania at the UDSM Research Week.",
				Date:        AnnouncementDate{Day: "19", Month: "MAY", Year: "2025"},
				IsNew:       true,
				Status:      StatusActive,
			},
			{
				Title:       "Invitation to ICT training on the use of chatbot systems in legal assistance, 2025",
				Description: "Learn how to effectively utilize chatbot systems for legal assistance in this comprehensive ICT training session.",
				Date:        AnnouncementDate{Day: "05", Month: "MAY", Year: "2025"},
				IsNew:       true,
				Status:      StatusActive,
			},
			{
				Title:       "Official inaguration of CLC Chatbot System at Kibaha District Council - Dec 2023",
				Description: "Witness the launch of our innovative CLC Chatbot System at Kibaha District Council, marking a new era in legal assistance.",
				Date:        AnnouncementDate{Day: "18", Month: "DEC", Year: "2023"},
				IsNew:       false,
				Status:      StatusActive,
			},
		},
	}
}

func defaultHero() *HeroPayload {
	return &HeroPayload{
		Headline:    "FACING A LEGAL ISSUE?",
		Subheadline: "Start on WhatsApp, chat with legal Experts, book a phone or Zoom meeting, then meet in person to complete your case.",
		CTAText:     "CHAT WITH LEGAL EXPERTS",
		Status:      StatusActive,
		ChatData: ChatData{
			UserMessage: "Hi, I need legal Service Can you help?",
			BotResponse: "Thanks for reaching out! Please choose the options below:",
			UserName:    "Emma",
			Options: []*HeroOption{
				{Text: "Book an Appointment", Icon: "calendar"},
				{Text: "Chat with Support", Icon: "chat"},
			},
		},
	}
}

func defaultHow() *HowPayload {
	return &HowPayload{
		Title:    "HOW IT WORKS",
		Subtitle: "Getting legal help is simple",
		Status:   StatusActive,
		Steps: []*HowStep{
			{StepID: 1, Title: "Start on WhatsApp", Description: "Message us to describe your legal issue.", Icon: "whatsapp"},
			{StepID: 2, Title: "Chat with Experts", Description: "A licensed expert reviews your case and advises you.", Icon: "chat"},
			{StepID: 3, Title: "Book a Meeting", Description: "Schedule a phone or Zoom consultation.", Icon: "calendar"},
			{StepID: 4, Title: "Meet in Person", Description: "Complete your case with an in person meeting.", Icon: "handshake"},
		},
	}
}

func defaultAbout() *About {
	return &About{
		Title:       "ABOUT US",
		Description: "CLC is a trusted Tanzanian legal service provider connecting clients to licensed experts via WhatsApp. Through our LegalBridge Platform, we offer fast, professional support across various legal services making access to legal help easier, affordable, and available across Tanzania and beyond.",
		Status:      StatusActive,
	}
}

func defaultContact() *Contact {
	return &Contact{
		Title:  "CONTACT US",
		Status: StatusActive,
		Items: []*ContactItem{
			{Label: "Community Legal Clinic (CLC)", IsMain: true, Status: StatusActive},
			{Label: "Dar es Salaam,", IsAddress: true, Status: StatusActive},
			{Label: "P. O. Box 4661,", IsAddress: true, Status: StatusActive},
			{Label: "TANZANIA.", IsAddress: true, Status: StatusActive},
			{Label: "Email", Value: "info@clc.tz", IsContact: true, Status: StatusActive},
			{Label: "Phone", Value: "+255 745 118 253", IsContact: true, Status: StatusActive},
		},
	}
}

func defaultUsefulLinks() *LinkList {
	return &LinkList{
		Title:  "USEFUL LINKS",
		Status: StatusActive,
		Items: []*LinkItem{
			{Label: "About Us", Href: "#about", Status: StatusActive},
			{Label: "Our Services", Href: "#services", Status: StatusActive},
			{Label: "Testimonials", Href: "#testimonials", Status: StatusActive},
			{Label: "Book Consultation", Href: "https://shorturl.at/EMOCr", Status: StatusActive},
			{Label: "Chat with Expert", Href: "https://shorturl.at/UJAb8", Status: StatusActive},
		},
	}
}

func defaultServiceLinks() []*LinkItem {
	items := make([]*LinkItem, 0, 6)
	for i := 0; i < 6; i++ {
		items = append(items, &LinkItem{Label: "", Href: "#services", Status: StatusActive})
	}
	return items
}

func defaultSocialLinks() []*SocialLink {
	return []*SocialLink{
		{Platform: "whatsapp", URL: "https://wa.me/255745118253", Icon: "FaWhatsapp", AriaLabel: "Chat with Legal Expert on WhatsApp", Status: StatusActive},
		{Platform: "twitter", URL: "https://twitter.com/communitylegalclinic", Icon: "FaTwitter", AriaLabel: "Follow us on Twitter", Status: StatusActive},
		{Platform: "facebook", URL: "https://facebook.com/communitylegalclinic", Icon: "FaFacebook", AriaLabel: "Like us on Facebook", Status: StatusActive},
		{Platform: "youtube", URL: "https://youtube.com/communitylegalclinic", Icon: "FaYoutube", AriaLabel: "Subscribe to our YouTube channel", Status: StatusActive},
	}
}
