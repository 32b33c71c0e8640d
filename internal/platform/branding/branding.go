// Package branding holds product names shown in the console chrome.
package branding

// AppName is the product name used in page titles.
const AppName = "BuryatVPN"

// ConsoleHeading is the header label of the admin console.
const ConsoleHeading = "Админ панель"

// DefaultAvatarURL is the placeholder profile picture in the header.
const DefaultAvatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"
