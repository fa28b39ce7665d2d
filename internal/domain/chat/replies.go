package chat

// messageToken is replaced with the caller's original message in templated replies.
const messageToken = "{message}"

const greeting1 = "Hey there! 👋 I'm your AI assistant. I can help you with career advice, answer general questions, or just chat! What's on your mind?"

const greeting2 = "Hello! 😊 Great to see you! I'm here to help with anything - career guidance, tech questions, life advice, or just a friendly conversation. What can I do for you?"

const greeting3 = "Hi! 🌟 I'm your personal AI assistant. Ask me about careers, technology, science, or anything else you're curious about!"

const careerReply = "Great question about careers! 🎯 I can help you explore different career paths based on your interests and skills. What field are you interested in? (Tech, Business, Healthcare, Creative, etc.) Or would you like me to analyze your resume?"

const programmingReply = "💻 Programming is an amazing skill! Popular languages include Python (great for beginners & data science), JavaScript (web development), Java (enterprise apps), and C++ (systems programming). What would you like to know more about?"

const pythonReply = "🐍 Python is fantastic! It's beginner-friendly, versatile, and used in web development (Django/Flask), data science (pandas/numpy), AI/ML (TensorFlow/PyTorch), automation, and more. Want to know how to get started?"

const javascriptReply = "⚡ JavaScript powers the web! You can use it for frontend (React, Vue, Angular), backend (Node.js), mobile apps (React Native), and even desktop apps (Electron). It's everywhere! Need learning resources?"

const aiReply = "🤖 AI is transforming the world! It includes Machine Learning, Deep Learning, Natural Language Processing, Computer Vision, and Robotics. Popular applications: chatbots, recommendation systems, autonomous vehicles, and medical diagnosis. What aspect interests you?"

const machineLearningReply = "🧠 Machine Learning enables computers to learn from data! Main types: Supervised Learning (labeled data), Unsupervised Learning (patterns in unlabeled data), and Reinforcement Learning (learning through rewards). Tools: scikit-learn, TensorFlow, PyTorch. Want to dive deeper?"

const deepLearningReply = "🕸️ Deep Learning uses artificial neural networks with multiple layers! It powers image recognition, NLP, speech recognition, and autonomous vehicles. Key architectures: CNNs (images), RNNs (sequences), Transformers (language). Frameworks: TensorFlow, PyTorch, Keras. What would you like to know?"

const cnnReply = `🖼️ CNNs (Convolutional Neural Networks) are specialized for image processing! They use convolutional layers to detect features like edges, textures, and patterns.

**Famous CNN Architectures:**
📊 AlexNet (2012) - Started the deep learning revolution
🏗️ VGG (2014) - Simple, deep architecture
🔄 ResNet (2015) - Skip connections, very deep (152 layers)
🌟 Inception/GoogLeNet (2014) - Multi-scale processing
⚡ EfficientNet (2019) - Optimized efficiency

Want details about a specific model?`

const alexNetReply = `🎯 **AlexNet (2012)** - The breakthrough model!

**Architecture:**
• 8 layers (5 conv + 3 fully connected)
• 60 million parameters
• Used ReLU activation (first to do so)
• Dropout for regularization
• Data augmentation

**Key Innovations:**
✅ ReLU instead of tanh/sigmoid (faster training)
✅ GPU training (2 GTX 580 GPUs)
✅ Local Response Normalization
✅ Overlapping pooling

**Impact:** Won ImageNet 2012 with 15.3% error (vs 26% previous best), sparked the deep learning revolution!

**Applications:** Image classification, object detection foundation`

const vggReply = `🏛️ **VGG (Visual Geometry Group, 2014)** - Simple but powerful!

**Architecture:**
• VGG-16: 16 layers (13 conv + 3 FC)
• VGG-19: 19 layers (16 conv + 3 FC)
• 138 million parameters
• Only 3×3 conv filters throughout
• 2×2 max pooling

**Key Features:**
✅ Uniform architecture (all 3×3 filters)
✅ Depth matters (deeper = better)
✅ Small filters stack for large receptive field
✅ Simple and easy to implement

**Strengths:** Excellent feature extractor, transfer learning
**Weakness:** Large memory/compute requirements

**Applications:** Transfer learning, feature extraction, style transfer`

const resNetReply = `🔗 **ResNet (Residual Network, 2015)** - Revolutionary skip connections!

**Architecture:**
• ResNet-50, ResNet-101, ResNet-152 (up to 152 layers!)
• Residual blocks with skip connections
• ~25 million parameters (ResNet-50)

**Key Innovation - Skip Connections:**
F(x) + x instead of just F(x)
✅ Solves vanishing gradient problem
✅ Enables training very deep networks (100+ layers)
✅ Identity mapping preserves information

**Variants:**
• ResNeXt - Grouped convolutions
• Wide ResNet - Wider layers
• ResNet-V2 - Improved architecture

**Impact:** Won ImageNet 2015 (3.57% error), enabled ultra-deep networks

**Applications:** Image classification, object detection (Faster R-CNN), segmentation`

const inceptionReply = `🌟 **Inception/GoogLeNet (2014)** - Multi-scale feature extraction!

**Architecture:**
• 22 layers deep
• Inception modules with parallel convolutions
• Only 5 million parameters (12× less than AlexNet!)
• No fully connected layers

**Inception Module - Parallel Processing:**
1×1, 3×3, 5×5 convolutions + max pooling in parallel
✅ Captures features at multiple scales
✅ 1×1 convs reduce dimensions (computational efficiency)
✅ Concatenates all outputs

**Versions:**
• Inception v1 (GoogLeNet) - Original
• Inception v2/v3 - Batch normalization, factorized convolutions
• Inception v4 - Combined with ResNet (Inception-ResNet)
• Xception - Extreme Inception with depthwise separable convs

**Impact:** Won ImageNet 2014, proved efficiency matters

**Applications:** Real-time applications, mobile deployment`

const efficientNetReply = `⚡ **EfficientNet (2019)** - Compound scaling for optimal efficiency!

**Architecture:**
• EfficientNet-B0 to B7 (scaled versions)
• Mobile Inverted Bottleneck Conv (MBConv)
• Squeeze-and-Excitation blocks
• B0: 5.3M params, B7: 66M params

**Key Innovation - Compound Scaling:**
Balances 3 dimensions simultaneously:
📏 **Depth** - Number of layers
📐 **Width** - Channel size
🖼️ **Resolution** - Input image size

Formula: depth × width² × resolution² ≈ 2^φ

**Why It's Special:**
✅ State-of-the-art accuracy with fewer parameters
✅ 8.4× smaller than best existing CNNs
✅ 6.1× faster inference
✅ Mobile-friendly (EfficientNet-Lite)

**Performance:**
EfficientNet-B7: 84.3% ImageNet top-1 accuracy

**Applications:** Mobile vision, edge devices, production systems, AutoML`

const cnnComparisonReply = `📊 **CNN Model Comparison:**

**AlexNet (2012):** 60M params, 15.3% error
├ First deep CNN success
└ High memory usage

**VGG-16 (2014):** 138M params, 7.3% error
├ Simple uniform design
└ Very large memory footprint

**GoogLeNet (2014):** 5M params, 6.7% error
├ Efficient multi-scale processing
└ Complex architecture

**ResNet-50 (2015):** 25M params, 3.6% error
├ Revolutionary skip connections
└ Easy to train very deep

**EfficientNet-B7 (2019):** 66M params, 15.7% error
├ Best accuracy/efficiency trade-off
└ Compound scaling

**Choose based on:**
• Accuracy needed
• Hardware constraints
• Inference speed requirements
• Training time available`

const transferLearningReply = `🎓 **Transfer Learning with CNNs** - Use pre-trained models!

**How it works:**
1. Take a CNN pre-trained on ImageNet (1.2M images, 1000 classes)
2. Remove the final classification layer
3. Add your custom layers for your task
4. Fine-tune or freeze early layers

**Popular Pre-trained Models:**
• VGG16/VGG19 - Great feature extractor
• ResNet50/ResNet101 - Balanced performance
• InceptionV3 - Efficient
• EfficientNet - State-of-the-art
• MobileNet - Mobile devices

**Strategies:**
🔒 **Feature Extraction:** Freeze all layers, train only new layers
🔧 **Fine-tuning:** Freeze early layers, train later layers
🔥 **Full Training:** Train entire network (if lots of data)

**Benefits:**
✅ Faster training
✅ Less data needed
✅ Better performance
✅ Proven architectures

**Use cases:** Medical imaging, custom object detection, facial recognition`

const spaceReply = "🌌 Space is incredible! The universe is about 13.8 billion years old, contains billions of galaxies, and is still expanding. Recent discoveries include exoplanets, black holes, and gravitational waves. What cosmic topic fascinates you?"

const physicsReply = "⚛️ Physics explains how the universe works! From quantum mechanics (tiny particles) to general relativity (massive objects), it covers motion, energy, forces, and the fabric of spacetime. Specific area you're curious about?"

const healthReply = "💪 Health is wealth! Regular exercise (150 min/week cardio + strength training), balanced nutrition, good sleep (7-9 hours), hydration, and stress management are key. What health topic would you like to explore?"

const learningReply = "📚 Learning is a lifelong journey! Effective strategies: active recall, spaced repetition, practice testing, and teaching others. Online resources: Coursera, edX, Khan Academy, YouTube. What would you like to learn about?"

const businessReply = "💼 Building a business is exciting! Key elements: identify a problem, create a solution, understand your market, build an MVP, get feedback, iterate. Remember: persistence beats perfection! What business aspect interests you?"

const financeReply = "💰 Financial literacy is crucial! Key concepts: budgeting (track income/expenses), emergency fund (3-6 months expenses), reduce debt, invest for long-term (index funds, diversification), and continuous learning. What financial topic can I help with?"

const skillsReply = "🚀 Skills are your superpower! In-demand skills: communication, problem-solving, critical thinking, digital literacy, adaptability. For resumes: highlight achievements with metrics, use action verbs, tailor to each job. Want to upload your resume for analysis?"

const interviewReply = "🎯 Interview success tips: Research the company thoroughly, practice STAR method (Situation, Task, Action, Result), prepare questions to ask them, dress appropriately, arrive early, maintain eye contact, and follow up with a thank-you email. Need specific interview advice?"

const mathReply = "🔢 Math is the language of the universe! From basic algebra to advanced calculus, it's used in science, engineering, finance, and AI. What mathematical concept can I help explain?"

const historyReply = "📜 History teaches us about human civilization, cultures, wars, innovations, and social movements. Understanding the past helps us navigate the present and future. Any specific historical period or event you're interested in?"

const artReply = "🎨 Creativity is essential! Whether it's visual art, music, writing, or design, creative expression enriches life. Digital tools make creativity more accessible than ever. What creative pursuit interests you?"

const musicReply = "🎵 Music is universal! From classical to hip-hop, it affects our emotions, memory, and well-being. Fun fact: listening to music releases dopamine (the \"feel-good\" chemical). What genre do you enjoy?"

const booksReply = "📖 Reading expands your mind! It improves vocabulary, focus, empathy, and knowledge. Fiction builds creativity, non-fiction provides practical insights. What topics do you enjoy reading about?"

const climateReply = "🌍 Climate is the long-term pattern, weather is day-to-day. Climate change is real and accelerating - rising temperatures, extreme weather, sea level rise. Solutions include renewable energy, conservation, and sustainable practices. What would you like to know?"

const foodReply = "🍳 Cooking is both art and science! Balanced nutrition includes proteins, carbs, healthy fats, vitamins, and minerals. Cooking at home is healthier and more economical. What cuisine or cooking technique interests you?"

const travelReply = "✈️ Travel broadens perspectives! It exposes you to new cultures, foods, languages, and experiences. Tips: plan ahead, budget wisely, stay flexible, respect local customs, and document your journey. Dream destination?"

const sportsReply = "⚽ Sports teach teamwork, discipline, and perseverance! Whether playing or watching, they bring people together. Physical activity boosts mental and physical health. What sport do you follow or play?"

const wellbeingReply = "🌟 Your mental health matters! Strategies: practice mindfulness, exercise regularly, connect with others, pursue hobbies, seek help when needed, celebrate small wins. Remember: it's okay not to be okay. What's on your mind?"

const timeManagementReply = "⏰ Time management is key! Techniques: Pomodoro (25-min focus blocks), Eisenhower Matrix (urgent/important), time blocking, eliminate distractions, prioritize tasks, and take breaks. What productivity challenge can I help with?"

const whatIsTemplate = "That's a great question! \"{message}\" - I'd love to help explain that! Could you be more specific about what aspect you'd like to know? Or I can give you a general overview if you'd like!"

const howToTemplate = "Excellent question about \"{message}\"! 🎯 Let me help you with that. Could you provide a bit more context? For example, are you looking for career advice, technical steps, or general guidance?"

const thanksReply = "You're very welcome! 😊 I'm always here to help with any questions - whether it's about careers, technology, science, or just life in general. Feel free to ask me anything!"

const helpReply = "Hey, no worries! 🤗 I'm here to help. Try asking me about: careers, technology (programming, AI), science, health, education, business, or any topic you're curious about. What would you like to know?"

const joke1 = "Why don't programmers like nature? 🌳 It has too many bugs! 😄"

const joke2 = "Why did the scarecrow win an award? 🏆 Because he was outstanding in his field! 😂"

const joke3 = "What do you call a bear with no teeth? 🐻 A gummy bear! 😆"

const joke4 = "Why don't scientists trust atoms? ⚛️ Because they make up everything! 🤣"

const defaultTemplate = `That's an interesting point about "{message}"! 🤔 I can help you with many topics:

💼 Career & Jobs
💻 Technology & Programming
🧠 AI & Machine Learning
🔬 Science & Math
📚 Education & Learning
💪 Health & Fitness
💰 Finance & Business

What would you like to explore?`

var greetings = []string{greeting1, greeting2, greeting3}

var jokes = []string{joke1, joke2, joke3, joke4}
