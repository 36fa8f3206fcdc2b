package site

import (
	"fmt"
	"strings"
	"time"
)

// defaultPage is the content shown for a well-known slug that has no page
// record yet.
type defaultPage struct {
	Title   string
	Content string
}

// defaultPageFor returns the built-in content for about, contact, privacy
// and terms. storeSlug fills the contact addresses.
func defaultPageFor(pageSlug, storeSlug string, now time.Time) (defaultPage, bool) {
	domain := storeSlug
	if domain == "" {
		domain = "store"
	}
	updated := now.Format("January 2, 2006")

	switch strings.ToLower(pageSlug) {
	case "about":
		return defaultPage{Title: "About Us", Content: aboutContent}, true
	case "contact":
		return defaultPage{Title: "Contact Us", Content: fmt.Sprintf(contactContent, domain, domain)}, true
	case "privacy":
		return defaultPage{Title: "Privacy Policy", Content: fmt.Sprintf(privacyContent, updated, domain)}, true
	case "terms":
		return defaultPage{Title: "Terms of Service", Content: fmt.Sprintf(termsContent, updated)}, true
	}
	return defaultPage{}, false
}

const notFoundContent = `<h2>Page Not Found</h2><p>The page you are looking for does not exist.</p>`

const unavailableContent = `<h2>Page Unavailable</h2><p>This page could not be loaded right now. Please try again shortly.</p>`

const aboutContent = `<h2>About Our Store</h2>
<p>Welcome to our store! We are passionate about providing high-quality products and exceptional customer service.</p>
<h3>Our Mission</h3>
<p>To deliver amazing products that make our customers' lives better while building lasting relationships based on trust and satisfaction.</p>
<h3>Our Story</h3>
<p>Founded with a vision to create something special, our store has grown from a small idea into a trusted destination for customers worldwide.</p>
<h3>Why Choose Us?</h3>
<ul>
<li>High-quality products carefully selected for you</li>
<li>Fast and reliable shipping</li>
<li>Excellent customer support</li>
<li>Satisfaction guarantee</li>
</ul>`

const contactContent = `<h2>Get In Touch</h2>
<p>We'd love to hear from you! Reach out to us with any questions, concerns, or feedback.</p>
<h3>Contact Information</h3>
<p><strong>Email:</strong> info@%s.com</p>
<p><strong>Phone:</strong> (555) 123-4567</p>
<p><strong>Address:</strong> 123 Store Street, City, State 12345</p>
<h3>Business Hours</h3>
<p><strong>Monday - Friday:</strong> 9:00 AM - 6:00 PM</p>
<p><strong>Saturday:</strong> 10:00 AM - 4:00 PM</p>
<p><strong>Sunday:</strong> Closed</p>
<h3>Send Us a Message</h3>
<p>For the fastest response, please email us at info@%s.com. We typically respond within 24 hours.</p>`

const privacyContent = `<h2>Privacy Policy</h2>
<p><em>Last updated: %s</em></p>
<h3>Information We Collect</h3>
<p>We collect information you provide directly to us, such as when you create an account, make a purchase, or contact us.</p>
<h3>How We Use Your Information</h3>
<p>We use the information we collect to:</p>
<ul>
<li>Process your orders and payments</li>
<li>Send you important updates about your orders</li>
<li>Improve our products and services</li>
<li>Respond to your inquiries and provide customer support</li>
</ul>
<h3>Information Sharing</h3>
<p>We do not sell, trade, or otherwise transfer your personal information to third parties without your consent, except as described in this policy.</p>
<h3>Data Security</h3>
<p>We implement appropriate security measures to protect your personal information against unauthorized access, alteration, disclosure, or destruction.</p>
<h3>Contact Us</h3>
<p>If you have any questions about this Privacy Policy, please contact us at privacy@%s.com.</p>`

const termsContent = `<h2>Terms of Service</h2>
<p><em>Last updated: %s</em></p>
<h3>Acceptance of Terms</h3>
<p>By using our website and services, you agree to be bound by these Terms of Service.</p>
<h3>Use of Our Service</h3>
<p>You may use our service for lawful purposes only. You agree not to use the service:</p>
<ul>
<li>In any way that violates applicable laws or regulations</li>
<li>To transmit any harmful or malicious code</li>
<li>To interfere with or disrupt our services</li>
</ul>
<h3>Orders and Payments</h3>
<p>All orders are subject to acceptance and availability. Prices are subject to change without notice.</p>
<h3>Returns and Refunds</h3>
<p>Please see our Return Policy for detailed information about returns and refunds.</p>
<h3>Limitation of Liability</h3>
<p>Our liability is limited to the maximum extent permitted by law.</p>
<h3>Changes to Terms</h3>
<p>We reserve the right to modify these terms at any time. Changes will be effective immediately upon posting.</p>`
