package v1

import (
	"fmt"
	"net/http"
	"time"

	"muto-jobboard/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

type NavLink struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type ContactInfo struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type WorkingHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

// Hero is the landing banner. Its search box submits to SearchPath as ?q=.
type Hero struct {
	Title             string `json:"title"`
	Subtitle          string `json:"subtitle"`
	SearchPlaceholder string `json:"search_placeholder"`
	SearchLabel       string `json:"search_label"`
	SearchPath        string `json:"search_path"`
}

type JobCategory struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HomeContent is the marketing copy of the landing page
type HomeContent struct {
	Hero       Hero          `json:"hero"`
	Categories []JobCategory `json:"categories"`
	HowWeWork  []ProcessStep `json:"how_we_work"`
}

// SiteChrome is the navigation bar and footer shared by every page, plus the
// landing page copy
type SiteChrome struct {
	Brand        string       `json:"brand"`
	LogoPath     string       `json:"logo_path"`
	Nav          []NavLink    `json:"nav"`
	Home         HomeContent  `json:"home"`
	About        string       `json:"about"`
	Contact      ContactInfo  `json:"contact"`
	WorkingHours WorkingHours `json:"working_hours"`
	Copyright    string       `json:"copyright"`
}

var siteNav = []NavLink{
	{Label: "Find Jobs", Path: "/jobs"},
	{Label: "Post a Job", Path: "/post-job"},
	{Label: "My Profile", Path: "/profile"},
}

var homeContent = HomeContent{
	Hero: Hero{
		Title:             "Your Dream Job is Waiting",
		Subtitle:          "We regularly update our job listings with a variety of open positions across different industries",
		SearchPlaceholder: "Job title or keyword",
		SearchLabel:       "Search Jobs",
		SearchPath:        "/jobs",
	},
	Categories: []JobCategory{
		{Icon: "briefcase", Title: "Office Administration", Description: "Administrative roles and support positions"},
		{Icon: "building", Title: "Customer Service", Description: "Customer care and support positions"},
		{Icon: "users", Title: "IT & Technology", Description: "Technical and software development roles"},
	},
	HowWeWork: []ProcessStep{
		{Step: 1, Title: "Submit Application", Description: "Submit your details and required documents directly to our office"},
		{Step: 2, Title: "Profile Review", Description: "Our team reviews your application and matches you with suitable positions"},
		{Step: 3, Title: "Get Hired", Description: "We coordinate interviews and help you land your dream job"},
	},
}

func siteChrome(now time.Time) SiteChrome {
	return SiteChrome{
		Brand:    "Muto Consults",
		LogoPath: "/muto-logo.png",
		Nav:      siteNav,
		Home:     homeContent,
		About:    "Muto Consults is a leading recruitment agency helping employers and job seekers navigate the complexities of recruitment since 2018.",
		Contact: ContactInfo{
			Address: "Haruna Towers, Ground Floor, RM 04-05",
			Phone:   "+256 701 045118",
			Email:   "info@muto-consults.com",
		},
		WorkingHours: WorkingHours{Days: "Monday - Saturday", Hours: "8:00 AM - 5:00 PM"},
		Copyright:    fmt.Sprintf("© %d Muto Consults Ltd. All rights reserved.", now.Year()),
	}
}

type SiteHandler struct {
	now func() time.Time
}

func NewSiteHandler(public *gin.RouterGroup) {
	handler := &SiteHandler{now: time.Now}
	public.GET("/site", handler.Chrome)
}

// SiteChrome godoc
// @Summary      Site navigation, footer and landing copy
// @Description  Static navigation links, landing page hero, categories and steps, contact details and working hours
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=SiteChrome}
// @Router       /site [get]
func (h *SiteHandler) Chrome(c *gin.Context) {
	response.Success(c, http.StatusOK, "Site", siteChrome(h.now()))
}
